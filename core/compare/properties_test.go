package compare

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cloud-cost/core/types"
)

// costPairs is a fixed sample of monthly cost pairs, including zeros
func costPairs() [][2]float64 {
	r := rand.New(rand.NewSource(42))
	pairs := [][2]float64{{0, 0}, {0, 10}, {10, 0}, {1e-6, 1e6}, {100, 100}}
	for i := 0; i < 200; i++ {
		pairs = append(pairs, [2]float64{r.Float64() * 5000, r.Float64() * 5000})
	}
	return pairs
}

var _ = Describe("Engine", func() {
	var engine *Engine

	BeforeEach(func() {
		engine = MustNew(nil)
	})

	Context("weights", func() {
		It("sum to one", func() {
			Expect(engine.Policy().Weights.Sum()).To(BeNumerically("~", 1.0, 1e-9))
		})
	})

	Context("compute comparison", func() {
		It("keeps cost scores zero-sum unless both costs are zero", func() {
			for _, p := range costPairs() {
				a, b := CostScores(p[0], p[1])
				if p[0] == 0 && p[1] == 0 {
					Expect(a).To(Equal(NeutralCostScore))
					Expect(b).To(Equal(NeutralCostScore))
					continue
				}
				Expect(a+b).To(BeNumerically("~", 10.0, 1e-9))
			}
		})

		It("bounds every score and the confidence", func() {
			for _, workload := range types.KnownWorkloadTypes {
				for _, p := range costPairs() {
					got, err := engine.CompareCompute(
						monthly(types.ProviderAWS, "a", p[0]),
						monthly(types.ProviderGCP, "b", p[1]),
						types.WorkloadRequirements{Type: workload},
					)
					Expect(err).NotTo(HaveOccurred())

					for _, s := range []types.CriterionScores{got.A.Scores, got.B.Scores} {
						for _, v := range []float64{s.Cost, s.Performance, s.Scalability, s.Reliability, s.Maintenance, s.Final} {
							Expect(v).To(And(BeNumerically(">=", 0), BeNumerically("<=", 10)))
						}
					}
					Expect(got.Recommendation.Confidence).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
					Expect(len(got.Recommendation.PrimaryReasons)).To(BeNumerically("<=", MaxPrimaryReasons))
				}
			}
		})

		It("never lists reliability or maintenance as a reason", func() {
			for _, p := range costPairs() {
				got, err := engine.CompareCompute(
					monthly(types.ProviderAWS, "a", p[0]),
					monthly(types.ProviderGCP, "b", p[1]),
					types.WorkloadRequirements{Type: types.WorkloadDataIntensive},
				)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Recommendation.PrimaryReasons).To(HaveEach(BeElementOf(ReasonCost, ReasonPerformance, ReasonScalability)))
			}
		})
	})

	Context("storage comparison", func() {
		It("bounds confidence to [0,1]", func() {
			for _, p := range costPairs() {
				got, err := engine.CompareStorage(
					perGB(types.ProviderAWS, "s3_standard", p[0]/1000),
					perGB(types.ProviderGCP, "standard", p[1]/1000),
				)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Recommendation.Confidence).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
			}
		})
	})

	Context("TCO", func() {
		It("scales linearly with the horizon", func() {
			for _, horizon := range []int{1, 12, 36, 60, 120} {
				got, err := engine.CalculateTCO(costs(100, 150), costs(23, 20), costs(5, 7), horizon)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.A.TCO).To(BeNumerically("~", got.A.Monthly.Total*float64(horizon), 1e-9))
				Expect(got.B.TCO).To(BeNumerically("~", got.B.Monthly.Total*float64(horizon), 1e-9))
			}
		})

		It("reports savings symmetrically", func() {
			for _, p := range costPairs() {
				got, err := engine.CalculateTCO(costs(p[0], p[1]), costs(p[1]/10, p[0]/10), nil, 24)
				Expect(err).NotTo(HaveOccurred())

				Expect(got.Savings).To(BeNumerically("~", abs(got.A.TCO-got.B.TCO), 1e-6))
				if got.A.TCO < got.B.TCO {
					Expect(got.SavingsProvider).To(Equal(types.ProviderAWS))
				} else {
					Expect(got.SavingsProvider).To(Equal(types.ProviderGCP))
				}
			}
		})
	})

	DescribeTable("example scenarios",
		func(run func() (float64, types.Provider), wantValue float64, wantProvider types.Provider) {
			value, provider := run()
			Expect(value).To(BeNumerically("~", wantValue, 1e-3))
			Expect(provider).To(Equal(wantProvider))
		},
		Entry("compute 100 vs 150 on a general workload", func() (float64, types.Provider) {
			got, err := MustNew(nil).CompareCompute(
				monthly(types.ProviderAWS, "a", 100), monthly(types.ProviderGCP, "b", 150),
				types.WorkloadRequirements{Type: types.WorkloadGeneral})
			Expect(err).NotTo(HaveOccurred())
			return got.A.Scores.Cost, got.Recommendation.Winner
		}, 6.0, types.ProviderAWS),
		Entry("storage 0.023 vs 0.020 per GB", func() (float64, types.Provider) {
			got, err := MustNew(nil).CompareStorage(
				perGB(types.ProviderAWS, "s3_standard", 0.023), perGB(types.ProviderGCP, "standard", 0.020))
			Expect(err).NotTo(HaveOccurred())
			return got.Recommendation.Confidence, got.CostSavingsProvider
		}, 0.652, types.ProviderGCP),
		Entry("36 month TCO", func() (float64, types.Provider) {
			got, err := MustNew(nil).CalculateTCO(costs(100, 150), costs(23, 20), costs(0, 0), 36)
			Expect(err).NotTo(HaveOccurred())
			return got.Savings, got.SavingsProvider
		}, 1762.2, types.ProviderAWS),
		Entry("both compute costs zero", func() (float64, types.Provider) {
			got, err := MustNew(nil).CompareCompute(types.PriceQuote{}, types.PriceQuote{}, types.WorkloadRequirements{})
			Expect(err).NotTo(HaveOccurred())
			return got.B.Scores.Cost, got.Recommendation.Winner
		}, 5.0, types.ProviderAWS),
		Entry("25 word migration on a tight budget", func() (float64, types.Provider) {
			plan, err := MustNew(nil).RecommendMigration(types.ProviderAWS, types.ProviderGCP, words(25), types.BudgetTight)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.ComplexityLevel).To(Equal(types.ComplexityMedium))
			return plan.EstimatedCost, plan.TargetProvider
		}, 10500.0, types.ProviderGCP),
	)
})

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
