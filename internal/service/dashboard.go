package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"tekki/internal/cache"
	"tekki/internal/model"
	"tekki/internal/repository"
	"tekki/internal/stats"
)

// DefaultDashboardTTL is used when no cache TTL is configured.
const DefaultDashboardTTL = time.Minute

const recentActivityLimit = 10

var dashboardKey = cache.Dashboard.Key("summary")

type LeadCards struct {
	Total          int            `json:"total"`
	NewThisMonth   int            `json:"new_this_month"`
	Change         float64        `json:"change"`
	ConversionRate float64        `json:"conversion_rate"`
	ByStatus       map[string]int `json:"by_status"`
}

type ApplicationCards struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	ThisMonth      int     `json:"this_month"`
	Change         float64 `json:"change"`
}

type EnrollmentCards struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	PaidRevenue int64   `json:"paid_revenue"`
	ThisMonth   int     `json:"this_month"`
	Change      float64 `json:"change"`
}

type JobCards struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type BusinessCards struct {
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	Kind     string    `json:"kind"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
	Relative string    `json:"relative"`
}

// Dashboard is the admin home page.
type Dashboard struct {
	Leads          LeadCards        `json:"leads"`
	Applications   ApplicationCards `json:"applications"`
	Enrollments    EnrollmentCards  `json:"enrollments"`
	Jobs           JobCards         `json:"jobs"`
	Businesses     BusinessCards    `json:"businesses"`
	RecentActivity []Activity       `json:"recent_activity"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

type DashboardService interface {
	Invalidator
	// Summary returns the cards, from cache when warm.
	Summary(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	jobs        repository.JobRepository
	apps        repository.ApplicationRepository
	leads       repository.LeadRepository
	enrollments repository.EnrollmentRepository
	businesses  repository.BusinessRepository
	cache       cache.Cache
	ttl         time.Duration
	log         *slog.Logger
	now         func() time.Time
	// gen is bumped by Invalidate; a summary computed across a bump is not cached.
	gen atomic.Uint64
}

// NewDashboardService builds the dashboard. A nil cache disables caching.
func NewDashboardService(
	jobs repository.JobRepository,
	apps repository.ApplicationRepository,
	leads repository.LeadRepository,
	enrollments repository.EnrollmentRepository,
	businesses repository.BusinessRepository,
	c cache.Cache,
	ttl time.Duration,
	log *slog.Logger,
) DashboardService {
	if ttl <= 0 {
		ttl = DefaultDashboardTTL
	}
	return &dashboardService{
		jobs:        jobs,
		apps:        apps,
		leads:       leads,
		enrollments: enrollments,
		businesses:  businesses,
		cache:       c,
		ttl:         ttl,
		log:         orDefaultLogger(log),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	if d, ok := s.cached(ctx); ok {
		refreshRelative(d.RecentActivity, now)
		return d, nil
	}

	gen := s.gen.Load()
	d, err := s.compute(ctx, now)
	if err != nil {
		return nil, err
	}
	if s.gen.Load() == gen {
		s.store(ctx, d)
	}
	return d, nil
}

// Invalidate drops the cached summary. Failures are logged; the entry expires anyway.
func (s *dashboardService) Invalidate(ctx context.Context) {
	s.gen.Add(1)
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardKey); err != nil {
		s.log.WarnContext(ctx, "dashboard cache invalidation failed", "err", err)
	}
}

func (s *dashboardService) cached(ctx context.Context) (*Dashboard, bool) {
	if s.cache == nil {
		return nil, false
	}
	b, err := s.cache.Get(ctx, dashboardKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WarnContext(ctx, "dashboard cache read failed", "err", err)
		}
		return nil, false
	}
	var d Dashboard
	if err := json.Unmarshal(b, &d); err != nil {
		s.log.WarnContext(ctx, "dashboard cache entry corrupt", "err", err)
		return nil, false
	}
	return &d, true
}

func (s *dashboardService) store(ctx context.Context, d *Dashboard) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(d)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardKey, b, s.ttl); err != nil {
		s.log.WarnContext(ctx, "dashboard cache write failed", "err", err)
	}
}

func (s *dashboardService) compute(ctx context.Context, now time.Time) (*Dashboard, error) {
	var (
		jobs        []model.JobOpening
		apps        []model.JobApplication
		leads       []model.Lead
		enrollments []model.Enrollment
		businesses  []model.Business
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { jobs, err = s.jobs.List(gctx); return wrap("jobs", err) })
	g.Go(func() (err error) { apps, err = s.apps.List(gctx); return wrap("applications", err) })
	g.Go(func() (err error) { leads, err = s.leads.List(gctx); return wrap("leads", err) })
	g.Go(func() (err error) { enrollments, err = s.enrollments.List(gctx); return wrap("enrollments", err) })
	g.Go(func() (err error) { businesses, err = s.businesses.List(gctx); return wrap("businesses", err) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cur, prev := stats.MonthWindow(now)
	d := &Dashboard{
		Leads:        leadCards(leads, cur, prev),
		Applications: applicationCards(apps, cur, prev),
		Enrollments:  enrollmentCards(enrollments, cur, prev),
		Jobs:         jobCards(jobs),
		Businesses:   businessCards(businesses),
		GeneratedAt:  now,
	}
	d.RecentActivity = recentActivity(leads, apps, enrollments, now)
	return d, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return nil
}

func monthCounts[T any](items []T, created func(T) time.Time, cur, prev time.Time) (thisMonth, lastMonth int) {
	for _, it := range items {
		t := created(it)
		switch {
		case stats.InMonth(t, cur):
			thisMonth++
		case stats.InMonth(t, prev):
			lastMonth++
		}
	}
	return thisMonth, lastMonth
}

func leadCards(leads []model.Lead, cur, prev time.Time) LeadCards {
	c := LeadCards{Total: len(leads), ByStatus: map[string]int{}}
	for _, s := range []model.LeadStatus{model.LeadNew, model.LeadContacted, model.LeadQualified, model.LeadConverted, model.LeadLost} {
		c.ByStatus[string(s)] = 0
	}
	for _, l := range leads {
		c.ByStatus[string(l.Status)]++
	}
	var last int
	c.NewThisMonth, last = monthCounts(leads, leadAccessors.Created, cur, prev)
	c.Change = stats.Change(c.NewThisMonth, last)
	c.ConversionRate = stats.ConversionRate(c.ByStatus[string(model.LeadConverted)], c.Total)
	return c
}

func applicationCards(apps []model.JobApplication, cur, prev time.Time) ApplicationCards {
	c := ApplicationCards{Total: len(apps)}
	var accepted int
	for _, a := range apps {
		switch a.Status {
		case model.ApplicationPending:
			c.Pending++
		case model.ApplicationAccepted:
			accepted++
		}
	}
	var last int
	c.ThisMonth, last = monthCounts(apps, applicationAccessors.Created, cur, prev)
	c.Change = stats.Change(c.ThisMonth, last)
	c.AcceptanceRate = stats.Percentage(accepted, c.Total)
	return c
}

func enrollmentCards(es []model.Enrollment, cur, prev time.Time) EnrollmentCards {
	c := EnrollmentCards{Total: len(es)}
	for _, e := range es {
		if e.Status == model.EnrollmentConfirmed || e.Status == model.EnrollmentCompleted {
			c.Active++
		}
		if e.PaymentStatus == model.PaymentPaid {
			c.PaidRevenue += e.Amount
		}
	}
	var last int
	c.ThisMonth, last = monthCounts(es, enrollmentAccessors.Created, cur, prev)
	c.Change = stats.Change(c.ThisMonth, last)
	return c
}

func jobCards(jobs []model.JobOpening) JobCards {
	c := JobCards{Total: len(jobs)}
	for _, j := range jobs {
		if j.IsActive {
			c.Active++
		}
	}
	return c
}

func businessCards(bs []model.Business) BusinessCards {
	var c BusinessCards
	for _, b := range bs {
		switch b.Status {
		case model.BusinessAvailable:
			c.Available++
		case model.BusinessReserved:
			c.Reserved++
		case model.BusinessSold:
			c.Sold++
		}
	}
	return c
}

func recentActivity(leads []model.Lead, apps []model.JobApplication, es []model.Enrollment, now time.Time) []Activity {
	feed := make([]Activity, 0, len(leads)+len(apps)+len(es))
	for _, l := range leads {
		feed = append(feed, Activity{Kind: "lead", ID: l.ID, Title: l.FullName, Status: string(l.Status), At: l.CreatedAt})
	}
	for _, a := range apps {
		title := a.FullName
		if a.JobTitle != "" {
			title += " · " + a.JobTitle
		}
		feed = append(feed, Activity{Kind: "application", ID: a.ID, Title: title, Status: string(a.Status), At: a.CreatedAt})
	}
	for _, e := range es {
		feed = append(feed, Activity{Kind: "enrollment", ID: e.ID, Title: e.FullName + " · " + e.Formula, Status: string(e.Status), At: e.CreatedAt})
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].At.After(feed[j].At) })
	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}
	refreshRelative(feed, now)
	return feed
}

func refreshRelative(feed []Activity, now time.Time) {
	for i := range feed {
		feed[i].Relative = stats.RelativeTime(feed[i].At, now)
	}
}
