package service_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/syedmahboobhussain12-ai/cricval/internal/adapters/repository"
	service "github.com/syedmahboobhussain12-ai/cricval/internal/app"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/aggregate"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/valuation"
	"github.com/syedmahboobhussain12-ai/cricval/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// writeDataset builds a small two-season CSV on disk: three matches
// per season for one batter/bowler pair.
func writeDataset(t *testing.T) string {
	t.Helper()
	content := "match_id,date,innings,ball,batter,bowler,batting_team,bowling_team,runs_off_bat,total_runs,is_wicket\n"
	for _, season := range []int{2024, 2025} {
		for m := 1; m <= 3; m++ {
			for b := 1; b <= 6; b++ {
				wicket := 0
				if b == 6 {
					wicket = 1
				}
				content += fmt.Sprintf("s%dm%d,%d-05-%02d,1,0.%d,V Kohli,J Bumrah,Royal Challengers Bengaluru,Mumbai Indians,4,4,%d\n",
					season, m, season, m, b, wicket)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "deliveries.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func newService(t *testing.T) *service.Service {
	t.Helper()
	return service.New(
		service.WithDataFiles(writeDataset(t)),
		service.WithMinMatches(2),
		service.WithWorkerCount(1),
		service.WithDefaultRequest(valuation.Request{
			Filter: aggregate.SeasonFilter{Mode: aggregate.RecentWindow, Window: 2},
		}),
	)
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service over a two-season dataset", t, func() {
		ctx := context.Background()
		svc := newService(t)

		Convey("When started", func() {
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("Then the seasons are indexed", func() {
				So(svc.Seasons(ctx), ShouldResemble, []int{2024, 2025})
			})

			Convey("Then stats report the dataset shape", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["deliveries"], ShouldEqual, 36)
				So(stats["players"], ShouldEqual, 2)
				So(stats["seasons"], ShouldEqual, 2)
				So(stats["dataset_fingerprint"], ShouldNotBeEmpty)
			})
		})

		Convey("When the dataset file is missing", func() {
			broken := service.New(service.WithDataFiles("/nonexistent/data.csv"))

			Convey("Then start fails", func() {
				So(broken.Start(ctx), ShouldNotBeNil)
			})
		})
	})
}

func TestService_Valuations(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newService(t)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When requesting the default board", func() {
			rows, err := svc.Valuations(ctx, svc.DefaultRequest())
			So(err, ShouldBeNil)

			Convey("Then both players are valued over the recent window", func() {
				So(rows, ShouldHaveLength, 2)
				So(rows[0].Rank, ShouldEqual, 1)
			})

			Convey("And a repeat request serves the identical table", func() {
				again, err := svc.Valuations(ctx, svc.DefaultRequest())
				So(err, ShouldBeNil)
				So(again, ShouldResemble, rows)
			})
		})

		Convey("When requesting one exact season", func() {
			rows, err := svc.Valuations(ctx, valuation.Request{
				Filter: aggregate.SeasonFilter{Mode: aggregate.ExactSeason, Season: 2024},
			})

			Convey("Then the season board comes back", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
			})
		})

		Convey("When requesting an unknown formula", func() {
			_, err := svc.Valuations(ctx, valuation.Request{Family: "vibes"})

			Convey("Then the error surfaces", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestService_Career(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newService(t)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When fetching a known player's career", func() {
			career, err := svc.Career(ctx, "V Kohli")
			So(err, ShouldBeNil)

			Convey("Then totals span both seasons", func() {
				So(career.Runs, ShouldEqual, 144) // 36 balls x 4 runs each
				So(career.Seasons, ShouldHaveLength, 2)
				So(career.Seasons[0].Season, ShouldEqual, 2025)
			})
		})

		Convey("When fetching an unknown player", func() {
			_, err := svc.Career(ctx, "Nobody")

			Convey("Then the not-found error surfaces", func() {
				So(err, ShouldWrap, repository.ErrPlayerNotFound)
			})
		})
	})
}
