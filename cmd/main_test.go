package main

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/syedmahboobhussain12-ai/cricval/internal/config"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/aggregate"
)

func TestDefaultRequest(t *testing.T) {
	convey.Convey("Given a configuration", t, func() {
		convey.Convey("When season mode is recent", func() {
			cfg := config.New()
			cfg.SeasonWindow = 3
			req := defaultRequest(cfg)

			convey.So(req.Filter.Mode, convey.ShouldEqual, aggregate.RecentWindow)
			convey.So(req.Filter.Window, convey.ShouldEqual, 3)
			convey.So(req.Family, convey.ShouldEqual, cfg.FormulaFamily)
			convey.So(req.Strategy, convey.ShouldEqual, cfg.PricingStrategy)
		})

		convey.Convey("When season mode is exact", func() {
			cfg := config.New()
			cfg.SeasonMode = config.SeasonModeExact
			cfg.Season = 2024
			req := defaultRequest(cfg)

			convey.So(req.Filter.Mode, convey.ShouldEqual, aggregate.ExactSeason)
			convey.So(req.Filter.Season, convey.ShouldEqual, 2024)
		})
	})
}
