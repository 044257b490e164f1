package wallet

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/iotaledger/funds-tools/prices"
)

// region TimedBalanceMap //////////////////////////////////////////////////////////////////////////////////////////////

// TimedBalanceMap maps unix timestamps (in seconds) to the amount of funds that become spendable at that point in time.
type TimedBalanceMap map[int64]uint64

// NewTimedBalanceMap creates an empty TimedBalanceMap.
func NewTimedBalanceMap() TimedBalanceMap {
	return make(TimedBalanceMap)
}

// AddOutput books the amount of the given output into the bucket of its unlock time. Outputs that carry a timelock are
// booked under the timelock timestamp, all other outputs are booked under their booking timestamp.
func (t TimedBalanceMap) AddOutput(output *Output) {
	bucketTime := output.Metadata.Booked
	if timelock := output.Object.UnlockConditions().Timelock(); timelock != nil {
		bucketTime = timelock.Timelock()
	}

	t[bucketTime.Unix()] += output.Object.Amount()
}

// TotalAmount returns the sum of all booked balances.
func (t TimedBalanceMap) TotalAmount() (totalAmount uint64) {
	for _, amount := range t {
		totalAmount += amount
	}

	return
}

// WithCumulative returns the balances ordered by ascending unlock time, with each entry carrying the running sum of all
// balances up to and including its own bucket.
func (t TimedBalanceMap) WithCumulative() (timedBalances TimedBalanceSlice) {
	timestamps := make([]int64, 0, len(t))
	for timestamp := range t {
		timestamps = append(timestamps, timestamp)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	timedBalances = make(TimedBalanceSlice, 0, len(timestamps))
	cumulativeAmount := uint64(0)
	for _, timestamp := range timestamps {
		cumulativeAmount += t[timestamp]

		timedBalances = append(timedBalances, &TimedBalance{
			Time:             time.Unix(timestamp, 0).UTC(),
			Amount:           t[timestamp],
			CumulativeAmount: cumulativeAmount,
		})
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TimedBalanceSlice ////////////////////////////////////////////////////////////////////////////////////////////

// TimedBalance represents the funds that become spendable at a specific point in time.
type TimedBalance struct {
	Time             time.Time
	Amount           uint64
	CumulativeAmount uint64
}

// TimedBalanceSlice is a list of TimedBalances ordered by ascending unlock time.
type TimedBalanceSlice []*TimedBalance

// Render writes the balances as a human readable table, pricing every amount with the given conversion rate. Ledger
// amounts use 6 decimal places, fiat values 2, with the uppercased currency code as suffix.
func (t TimedBalanceSlice) Render(writer io.Writer, rate float64, currency string) {
	currency = strings.ToUpper(currency)

	w := new(tabwriter.Writer)
	w.Init(writer, 0, 8, 2, '\t', tabwriter.AlignRight)
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "UNLOCK TIME", "AMOUNT", "VALUE", "CUMULATIVE AMOUNT", "CUMULATIVE VALUE")
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "-------------------", "---------------", "---------------", "-----------------", "----------------")

	for _, timedBalance := range t {
		_, _ = fmt.Fprintf(w, "%s\t%.6f IOTA\t%.2f %s\t%.6f IOTA\t%.2f %s\n",
			timedBalance.Time.Format("2006-01-02 15:04:05"),
			float64(timedBalance.Amount)/1_000_000.,
			prices.Convert(timedBalance.Amount, rate), currency,
			float64(timedBalance.CumulativeAmount)/1_000_000.,
			prices.Convert(timedBalance.CumulativeAmount, rate), currency,
		)
	}
	_ = w.Flush()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
