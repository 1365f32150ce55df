package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PairMetrics holds all Prometheus metrics for the pair module
type PairMetrics struct {
	// Operation counters, labelled by outcome
	SwapsTotal *prometheus.CounterVec
	MintsTotal *prometheus.CounterVec
	BurnsTotal *prometheus.CounterVec
	SyncsTotal *prometheus.CounterVec
	SkimsTotal *prometheus.CounterVec

	// Pair state
	Reserves      *prometheus.GaugeVec
	LPTokenSupply *prometheus.GaugeVec

	// Protocol fee shares minted to the fee recipient
	ProtocolFeeShares *prometheus.CounterVec

	// Rejected operations
	KViolations      *prometheus.CounterVec
	ReentrancyBlocks *prometheus.CounterVec
}

var (
	pairMetricsOnce sync.Once
	pairMetrics     *PairMetrics
)

// NewPairMetrics creates and registers pair metrics (singleton pattern)
func NewPairMetrics() *PairMetrics {
	pairMetricsOnce.Do(func() {
		pairMetrics = &PairMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "swaps_total",
					Help:      "Total number of swaps attempted",
				},
				[]string{"pair", "status"},
			),
			MintsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "mints_total",
					Help:      "Total number of liquidity mints attempted",
				},
				[]string{"pair", "status"},
			),
			BurnsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "burns_total",
					Help:      "Total number of liquidity burns attempted",
				},
				[]string{"pair", "status"},
			),
			SyncsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "syncs_total",
					Help:      "Total number of reserve syncs attempted",
				},
				[]string{"pair", "status"},
			),
			SkimsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "skims_total",
					Help:      "Total number of excess balance skims attempted",
				},
				[]string{"pair", "status"},
			),
			Reserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "reserves",
					Help:      "Current pair reserves in base units",
				},
				[]string{"pair", "token"},
			),
			LPTokenSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "lp_token_supply",
					Help:      "Total LP share supply",
				},
				[]string{"pair"},
			),
			ProtocolFeeShares: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "protocol_fee_shares_total",
					Help:      "LP shares minted to the protocol fee recipient",
				},
				[]string{"pair"},
			),
			KViolations: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "k_violations_total",
					Help:      "Swaps rejected by the constant product check",
				},
				[]string{"pair"},
			),
			ReentrancyBlocks: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "pair",
					Name:      "reentrancy_blocks_total",
					Help:      "Calls rejected because the pair was locked",
				},
				[]string{"pair"},
			),
		}
	})
	return pairMetrics
}

// recordOutcome counts one call of an operation on the pair.
func (k Keeper) recordOutcome(counter *prometheus.CounterVec, pair common.Address, err error) {
	counter.WithLabelValues(pair.Hex(), statusLabel(err)).Inc()
}

type metricsJournalKey struct{}

// metricsJournal holds state gauge and counter updates made on a store branch.
// They are exported once the outermost pair operation has written its branch,
// and dropped with the branch otherwise.
type metricsJournal struct {
	updates []func()
}

func journalFromContext(ctx sdk.Context) *metricsJournal {
	journal, _ := ctx.Value(metricsJournalKey{}).(*metricsJournal)
	return journal
}

// deferMetric queues update on the journal carried by ctx, or runs it now
// when ctx is not inside a pair operation.
func deferMetric(ctx sdk.Context, update func()) {
	if journal := journalFromContext(ctx); journal != nil {
		journal.updates = append(journal.updates, update)
		return
	}
	update()
}

// commit hands the updates to the enclosing journal, if any, or exports them.
func (j *metricsJournal) commit(parent *metricsJournal) {
	if parent != nil {
		parent.updates = append(parent.updates, j.updates...)
		return
	}
	for _, update := range j.updates {
		update()
	}
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// toFloat converts an amount for gauge export. Precision loss is acceptable.
func toFloat(x math.Int) float64 {
	if x.IsNil() {
		return 0
	}
	f, _ := new(big.Float).SetInt(x.BigInt()).Float64()
	return f
}
