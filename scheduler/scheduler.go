package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"stockwatch/apperrors"
	"stockwatch/models"
	"stockwatch/services/quote"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
)

// QuoteFetcher fetches the current quote for a symbol
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, symbol string) (quote.Quote, error)
}

// PriceSink persists a fetched price for a stock
type PriceSink interface {
	AppendPrice(ctx context.Context, stock *models.Stock, price decimal.Decimal, recordedAt time.Time) (*models.StockPrice, error)
}

// PriceChecker owns the recurring price check jobs, one per admitted symbol.
// Jobs run forever once started; there is no per-symbol stop API. Stopping a
// job requires restarting the process — a known limitation, kept on purpose.
type PriceChecker struct {
	cron     *gocron.Scheduler
	cronMu   sync.Mutex // gocron's fluent builder keeps chain state on the scheduler; arming must be serialized
	registry *JobRegistry
	quotes   QuoteFetcher
	store    PriceSink
	interval time.Duration
	timeout  time.Duration
}

// NewPriceChecker creates a price checker that ticks each registered symbol
// every interval and bounds each quote fetch by timeout.
func NewPriceChecker(registry *JobRegistry, quotes QuoteFetcher, store PriceSink, interval, timeout time.Duration) *PriceChecker {
	return &PriceChecker{
		cron:     gocron.NewScheduler(time.UTC),
		registry: registry,
		quotes:   quotes,
		store:    store,
		interval: interval,
		timeout:  timeout,
	}
}

// Start starts the underlying scheduler. Jobs may be added before or after.
func (pc *PriceChecker) Start() {
	pc.cron.StartAsync()
	log.Println("Price check scheduler started")
}

// Stop stops the underlying scheduler. Only used on process shutdown.
func (pc *PriceChecker) Stop() {
	pc.cron.Stop()
	log.Println("Price check scheduler stopped")
}

// StartJob registers and arms a recurring price check for the stock. The
// first tick fires after one full interval; StartJob returns as soon as the
// schedule is armed. SingletonMode keeps ticks for one symbol from
// overlapping; separate symbols tick on their own goroutines.
func (pc *PriceChecker) StartJob(stock *models.Stock) error {
	if !pc.registry.TryRegister(stock.Symbol) {
		return apperrors.NewJobAlreadyRunning(stock.Symbol)
	}

	pc.cronMu.Lock()
	_, err := pc.cron.Every(pc.interval).
		WaitForSchedule().
		SingletonMode().
		Tag(canonical(stock.Symbol)).
		Do(pc.checkPrice, stock)
	pc.cronMu.Unlock()
	if err != nil {
		// Could not arm the schedule, so the registry entry must not linger.
		pc.registry.Unregister(stock.Symbol)
		return apperrors.NewInternal(err)
	}

	log.Printf("Started price check for symbol: %s", stock.Symbol)
	return nil
}

// checkPrice is one tick: fetch a quote and persist the price. Failures are
// logged and contained; the schedule and registry entry survive so the next
// tick retries implicitly.
func (pc *PriceChecker) checkPrice(stock *models.Stock) {
	ctx, cancel := context.WithTimeout(context.Background(), pc.timeout)
	defer cancel()

	q, err := pc.quotes.FetchQuote(ctx, stock.Symbol)
	if err != nil {
		log.Printf("Error during scheduled price check for %s: %v", stock.Symbol, err)
		return
	}

	saved, err := pc.store.AppendPrice(ctx, stock, *q.Current, time.Now().UTC())
	if err != nil {
		log.Printf("Error saving price for %s: %v", stock.Symbol, err)
		return
	}

	log.Printf("Saved stock price for symbol %s: %s", stock.Symbol, saved.Price.String())
}
