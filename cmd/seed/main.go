// File: cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"

	"dinewise/internal/api"
	"dinewise/internal/config"
	"dinewise/internal/database"
	"dinewise/internal/model"
	"dinewise/internal/store"
	"dinewise/internal/worker"
	"dinewise/internal/yelp"
)

// 每個行政區的上游搜尋地點。
var boroughLocations = map[string]string{
	"MAN": "Manhattan, NY",
	"BK":  "Brooklyn, NY",
	"QN":  "Queens, NY",
	"BX":  "Bronx, NY",
	"SI":  "Staten Island, NY",
}

const pageSize = 50

// 測試時可覆寫的函式變數
var (
	loadConfig       = config.Load
	newPgxPool       = database.NewPgxPool
	upsertRestaurant = store.UpsertRestaurant
	newYelpAPI       = func(baseURL, apiKey string) yelp.API { return yelp.NewClient(baseURL, apiKey) }
	exitFunc         = os.Exit
)

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}

// rowFromSummary 以行政區代碼與小寫分類組快取列，快取路徑的分類比對
// 都以小寫進行。
func rowFromSummary(s api.RestaurantSummary, code string) *model.CachedRestaurant {
	r := &model.CachedRestaurant{
		YelpID:       s.ID,
		Name:         s.Name,
		LocationCode: code,
		Price:        s.Price,
		Rating:       s.Rating,
		ReviewCount:  s.ReviewCount,
		Categories:   lowerAll(s.Categories),
		Phone:        s.Phone,
		Address:      s.Address,
	}
	if s.Coordinates != nil {
		r.Lat = s.Coordinates.Latitude
		r.Lng = s.Coordinates.Longitude
	}
	return r
}

// seedBorough fetches up to limit restaurants for one borough and upserts
// them into the cache. Returns how many rows were written.
func seedBorough(ctx context.Context, db database.DB, yp yelp.API, code string, limit int) (int, error) {
	location := boroughLocations[code]
	written := 0
	for offset := 0; offset < limit; offset += pageSize {
		want := limit - offset
		if want > pageSize {
			want = pageSize
		}
		items, err := yp.SearchBusinesses(ctx, yelp.SearchParams{
			Term:     "restaurants",
			Location: location,
			Limit:    want,
			Offset:   offset,
		})
		if err != nil {
			return written, fmt.Errorf("seedBorough %s: %w", code, err)
		}
		for _, it := range items {
			if it.ID == "" || it.ReviewCount == 0 {
				continue
			}
			if err := upsertRestaurant(ctx, db, rowFromSummary(it, code)); err != nil {
				return written, fmt.Errorf("seedBorough %s: %w", code, err)
			}
			written++
		}
		if len(items) < want {
			break
		}
	}
	return written, nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	borough := fs.String("borough", "", "單一行政區代碼 (MAN/BK/QN/BX/SI)，空值表示全部")
	limit := fs.Int("limit", 200, "每個行政區最多抓幾家")
	workers := fs.Int("workers", len(boroughLocations), "同時處理的行政區數")
	if err := fs.Parse(args); err != nil {
		return err
	}

	codes := make([]string, 0, len(boroughLocations))
	if *borough != "" {
		code := strings.ToUpper(*borough)
		if _, ok := boroughLocations[code]; !ok {
			return fmt.Errorf("unknown borough %q", *borough)
		}
		codes = append(codes, code)
	} else {
		for code := range boroughLocations {
			codes = append(codes, code)
		}
		sort.Strings(codes)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	yp := newYelpAPI(cfg.YelpBaseURL, cfg.YelpAPIKey)

	// 各行政區並行抓取，單一行政區失敗不中斷其他區。
	var mu sync.Mutex
	totals := map[string]int{}
	tasks := make([]worker.Task, 0, len(codes))
	for _, code := range codes {
		code := code
		tasks = append(tasks, func() {
			n, err := seedBorough(context.Background(), db, yp, code, *limit)
			mu.Lock()
			totals[code] = n
			mu.Unlock()
			if err != nil {
				log.Printf("[%s] degraded after %d restaurants: %v", code, n, err)
			}
		})
	}
	worker.RunAll(*workers, tasks)

	total := 0
	for _, code := range codes {
		log.Printf("[%s] seeded %d restaurants", code, totals[code])
		total += totals[code]
	}
	log.Printf("done, %d restaurants total", total)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
