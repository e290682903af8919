package scoring_test

import (
	"math"
	"testing"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	scoring "github.com/syedmahboobhussain12-ai/cricval/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRawPoints_BatScore(t *testing.T) {
	Convey("Given the raw-points strategy", t, func() {
		s := scoring.NewRawPoints()

		Convey("When scoring a batter with 300 runs off 200 balls", func() {
			agg := model.BattingAggregate{Player: "A Batter", Runs: 300, Balls: 200, Matches: 5}

			Convey("Then the strike rate is 150 and the score is 540", func() {
				So(agg.StrikeRate(), ShouldAlmostEqual, 150.0, 0.0001)
				// 300 x (150/100)^2 / 1.25 = 300 x 2.25 / 1.25
				So(s.BatScore(agg), ShouldAlmostEqual, 540.0, 0.0001)
			})
		})

		Convey("When scoring a batter who never faced a ball", func() {
			agg := model.BattingAggregate{Player: "B Phantom"}

			Convey("Then the score is 0, not NaN", func() {
				score := s.BatScore(agg)
				So(math.IsNaN(score), ShouldBeFalse)
				So(score, ShouldEqual, 0)
			})
		})

		Convey("When two batters differ only in strike rate", func() {
			slow := model.BattingAggregate{Runs: 200, Balls: 200, Matches: 5}
			fast := model.BattingAggregate{Runs: 200, Balls: 100, Matches: 5}

			Convey("Then the faster scorer scores higher", func() {
				So(s.BatScore(fast), ShouldBeGreaterThan, s.BatScore(slow))
			})
		})
	})
}

func TestRawPoints_BowlScore(t *testing.T) {
	Convey("Given the raw-points strategy", t, func() {
		s := scoring.NewRawPoints()

		Convey("When scoring a bowler with 10 wickets, 180 runs off 120 balls", func() {
			agg := model.BowlingAggregate{Player: "A Bowler", Wickets: 10, RunsConceded: 180, Balls: 120, Matches: 5}

			Convey("Then the economy is 9.0 and the score is 350", func() {
				So(agg.Economy(), ShouldAlmostEqual, 9.0, 0.0001)
				// 10 x (9/9)^2 x 35
				So(s.BowlScore(agg), ShouldAlmostEqual, 350.0, 0.0001)
			})
		})

		Convey("When scoring a wicketless bowler", func() {
			agg := model.BowlingAggregate{Player: "B Tidy", RunsConceded: 30, Balls: 60, Matches: 5}

			Convey("Then the score is exactly 0 regardless of economy", func() {
				So(s.BowlScore(agg), ShouldEqual, 0)
			})
		})

		Convey("When a bowler's economy is under the floor of 4", func() {
			// Economy 3.0: ratio uses max(4, eco) so it tops out at 9/4.
			agg := model.BowlingAggregate{Wickets: 4, RunsConceded: 30, Balls: 60, Matches: 5}

			Convey("Then the excellence ratio is clamped at 9/4", func() {
				So(agg.Economy(), ShouldAlmostEqual, 3.0, 0.0001)
				So(s.BowlScore(agg), ShouldAlmostEqual, 4*2.25*2.25*35, 0.0001)
			})
		})
	})
}

func TestNormalizedIndex(t *testing.T) {
	Convey("Given the normalized-index strategy with defaults", t, func() {
		s, err := scoring.NewNormalizedIndex(scoring.Benchmarks{}, scoring.BattingWeights{}, scoring.BowlingWeights{}, 0)
		So(err, ShouldBeNil)

		Convey("When scoring a batter at every benchmark", func() {
			// SR 160, 48 runs/match, 30% boundaries: all sub-indices clip at 1.
			agg := model.BattingAggregate{Runs: 480, Balls: 300, Matches: 10, Boundaries: 90}

			Convey("Then the score is a full 1.0", func() {
				So(s.BatScore(agg), ShouldAlmostEqual, 1.0, 0.0001)
			})
		})

		Convey("When scoring any batter", func() {
			aggs := []model.BattingAggregate{
				{},
				{Runs: 10, Balls: 60, Matches: 3},
				{Runs: 2000, Balls: 500, Matches: 10, Boundaries: 400},
			}

			Convey("Then every score stays in [0, 1]", func() {
				for _, agg := range aggs {
					score := s.BatScore(agg)
					So(score, ShouldBeGreaterThanOrEqualTo, 0)
					So(score, ShouldBeLessThanOrEqualTo, 1)
				}
			})
		})

		Convey("When scoring a bowler at every benchmark", func() {
			// 2 wickets/match, economy 6.0, 50% dots.
			agg := model.BowlingAggregate{Wickets: 20, RunsConceded: 240, Balls: 240, Matches: 10, DotBalls: 120}

			Convey("Then the score is a full 1.0", func() {
				So(s.BowlScore(agg), ShouldAlmostEqual, 1.0, 0.0001)
			})
		})

		Convey("When two bowlers differ only in economy", func() {
			tight := model.BowlingAggregate{Wickets: 5, RunsConceded: 200, Balls: 180, Matches: 6}
			loose := model.BowlingAggregate{Wickets: 5, RunsConceded: 320, Balls: 180, Matches: 6}

			Convey("Then the cheaper bowler scores higher", func() {
				So(s.BowlScore(tight), ShouldBeGreaterThan, s.BowlScore(loose))
			})
		})
	})

	Convey("Given death-overs relief is enabled", t, func() {
		relieved, err := scoring.NewNormalizedIndex(scoring.Benchmarks{}, scoring.BattingWeights{}, scoring.BowlingWeights{}, 0.5)
		So(err, ShouldBeNil)
		plain, err := scoring.NewNormalizedIndex(scoring.Benchmarks{}, scoring.BattingWeights{}, scoring.BowlingWeights{}, 0)
		So(err, ShouldBeNil)

		Convey("When a bowler conceded heavily but mostly at the death", func() {
			agg := model.BowlingAggregate{Wickets: 8, RunsConceded: 300, Balls: 180, Matches: 6, DeathBalls: 120}

			Convey("Then relief raises the score over the plain index", func() {
				So(relieved.BowlScore(agg), ShouldBeGreaterThan, plain.BowlScore(agg))
			})
		})

		Convey("When a bowler bowled no death overs at all", func() {
			agg := model.BowlingAggregate{Wickets: 8, RunsConceded: 300, Balls: 180, Matches: 6}

			Convey("Then relief changes nothing", func() {
				So(relieved.BowlScore(agg), ShouldAlmostEqual, plain.BowlScore(agg), 0.0001)
			})
		})
	})

	Convey("Given invalid weight configurations", t, func() {
		Convey("When batting weights do not sum to 1", func() {
			_, err := scoring.NewNormalizedIndex(scoring.Benchmarks{},
				scoring.BattingWeights{StrikeRate: 0.5, RunsPerMatch: 0.5, BoundaryRate: 0.5},
				scoring.BowlingWeights{}, 0)

			Convey("Then construction fails with the batting weight error", func() {
				So(err, ShouldWrap, scoring.ErrBatWeightSum)
			})
		})

		Convey("When bowling weights do not sum to 1", func() {
			_, err := scoring.NewNormalizedIndex(scoring.Benchmarks{}, scoring.BattingWeights{},
				scoring.BowlingWeights{WicketsPerMatch: 0.9, Economy: 0.05, DotBallRate: 0.1}, 0)

			Convey("Then construction fails with the bowling weight error", func() {
				So(err, ShouldWrap, scoring.ErrBowlWeightSum)
			})
		})

		Convey("When death relief is out of range", func() {
			_, err := scoring.NewNormalizedIndex(scoring.Benchmarks{}, scoring.BattingWeights{}, scoring.BowlingWeights{}, 1.5)

			Convey("Then construction fails", func() {
				So(err, ShouldWrap, scoring.ErrDeathRelief)
			})
		})
	})
}

func TestNewStrategy(t *testing.T) {
	Convey("Given the strategy factory", t, func() {
		Convey("When asked for each known family", func() {
			raw, err := scoring.NewStrategy(scoring.FamilyRawPoints, scoring.Params{})
			So(err, ShouldBeNil)
			So(raw.Name(), ShouldEqual, scoring.FamilyRawPoints)

			idx, err := scoring.NewStrategy(scoring.FamilyNormalizedIndex, scoring.Params{})
			So(err, ShouldBeNil)
			So(idx.Name(), ShouldEqual, scoring.FamilyNormalizedIndex)
		})

		Convey("When the family name is empty", func() {
			s, err := scoring.NewStrategy("", scoring.Params{})

			Convey("Then it defaults to raw points", func() {
				So(err, ShouldBeNil)
				So(s.Name(), ShouldEqual, scoring.FamilyRawPoints)
			})
		})

		Convey("When the family name is unknown", func() {
			_, err := scoring.NewStrategy("vibes", scoring.Params{})

			Convey("Then it fails with the unknown-family error", func() {
				So(err, ShouldWrap, scoring.ErrUnknownFamily)
			})
		})
	})
}

func TestCombine(t *testing.T) {
	Convey("Given the score combiner", t, func() {
		Convey("When combining a stronger and a weaker skill", func() {
			Convey("Then the result is the max plus 0.3 of the min", func() {
				So(scoring.Combine(540, 100, 0.3), ShouldAlmostEqual, 570.0, 0.0001)
				So(scoring.Combine(100, 540, 0.3), ShouldAlmostEqual, 570.0, 0.0001)
			})
		})

		Convey("When the combo weight is zero", func() {
			Convey("Then the default weight of 0.3 applies", func() {
				So(scoring.Combine(540, 100, 0), ShouldAlmostEqual, 570.0, 0.0001)
			})
		})

		Convey("When one skill is zero", func() {
			Convey("Then the result equals the other skill", func() {
				So(scoring.Combine(350, 0, 0.3), ShouldAlmostEqual, 350.0, 0.0001)
			})
		})
	})
}

func TestAssignRole(t *testing.T) {
	Convey("Given skill scores and a threshold of 500", t, func() {
		Convey("When both sides exceed the threshold", func() {
			So(scoring.AssignRole(600, 520, 500), ShouldEqual, model.RoleAllRounder)
		})

		Convey("When only batting exceeds and leads", func() {
			So(scoring.AssignRole(600, 100, 500), ShouldEqual, model.RoleBatter)
		})

		Convey("When only bowling exceeds and leads", func() {
			So(scoring.AssignRole(100, 600, 500), ShouldEqual, model.RoleBowler)
		})

		Convey("When the two scores tie exactly", func() {
			Convey("Then the bowler role wins the tie", func() {
				So(scoring.AssignRole(400, 400, 500), ShouldEqual, model.RoleBowler)
				So(scoring.AssignRole(0, 0, 500), ShouldEqual, model.RoleBowler)
			})
		})

		Convey("When scores sit exactly on the threshold", func() {
			Convey("Then the threshold test is strict", func() {
				So(scoring.AssignRole(500, 500, 500), ShouldNotEqual, model.RoleAllRounder)
			})
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("Given degenerate floating-point inputs", t, func() {
		So(scoring.Sanitize(math.NaN()), ShouldEqual, 0)
		So(scoring.Sanitize(math.Inf(1)), ShouldEqual, 0)
		So(scoring.Sanitize(math.Inf(-1)), ShouldEqual, 0)
		So(scoring.Sanitize(42.5), ShouldEqual, 42.5)
	})
}
