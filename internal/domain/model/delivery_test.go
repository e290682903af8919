package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBattingAggregate(t *testing.T) {
	Convey("Given a batting aggregate", t, func() {
		Convey("When the player faced balls", func() {
			agg := model.BattingAggregate{Runs: 300, Balls: 200, Matches: 5, Boundaries: 40}

			So(agg.StrikeRate(), ShouldAlmostEqual, 150.0, 0.0001)
			So(agg.RunsPerMatch(), ShouldAlmostEqual, 60.0, 0.0001)
			So(agg.BoundaryRate(), ShouldAlmostEqual, 0.2, 0.0001)
		})

		Convey("When the aggregate is empty", func() {
			agg := model.BattingAggregate{}

			Convey("Then every rate is 0, never NaN", func() {
				So(math.IsNaN(agg.StrikeRate()), ShouldBeFalse)
				So(agg.StrikeRate(), ShouldEqual, 0)
				So(agg.RunsPerMatch(), ShouldEqual, 0)
				So(agg.BoundaryRate(), ShouldEqual, 0)
			})
		})
	})
}

func TestBowlingAggregate(t *testing.T) {
	Convey("Given a bowling aggregate", t, func() {
		Convey("When the player bowled", func() {
			agg := model.BowlingAggregate{Wickets: 10, RunsConceded: 180, Balls: 120, Matches: 5, DotBalls: 30, DeathBalls: 24}

			So(agg.Economy(), ShouldAlmostEqual, 9.0, 0.0001)
			So(agg.WicketsPerMatch(), ShouldAlmostEqual, 2.0, 0.0001)
			So(agg.DotBallRate(), ShouldAlmostEqual, 0.25, 0.0001)
			So(agg.DeathBallFraction(), ShouldAlmostEqual, 0.2, 0.0001)
		})

		Convey("When the aggregate is empty", func() {
			agg := model.BowlingAggregate{}

			So(agg.Economy(), ShouldEqual, 0)
			So(agg.WicketsPerMatch(), ShouldEqual, 0)
			So(agg.DotBallRate(), ShouldEqual, 0)
		})
	})
}

func TestDelivery_HasSeason(t *testing.T) {
	Convey("Given deliveries with and without dates", t, func() {
		dated := model.Delivery{Date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), Season: 2025}
		undated := model.Delivery{}

		So(dated.HasSeason(), ShouldBeTrue)
		So(undated.HasSeason(), ShouldBeFalse)
	})
}
