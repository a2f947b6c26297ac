package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"service_directory"
	"service_directory/internal/directory"
	"service_directory/internal/logger"
	"service_directory/internal/metrics"
	"service_directory/internal/models"
	"service_directory/internal/repository"
)

const (
	gridFeatureCount = 2
	cardSampleCount  = 4

	directoryPath = "/service-directory"

	// shown on a subcategory card whose first service has no image
	defaultCardImage = "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"

	healthOK       = "ok"
	healthDegraded = "degraded"
)

// DirectoryService serves the catalog loaded at construction. The catalog is
// immutable, so it is shared by all requests without locking.
type DirectoryService struct {
	catalog  *directory.Catalog
	labels   directory.Labels
	rejected int
	loadErr  error

	metrics *metrics.Collector
	log     *logger.Logger
}

func NewDirectoryService(ctx context.Context, repos *repository.Repository, m *metrics.Collector, log *logger.Logger) *DirectoryService {
	if log == nil {
		log = logger.Nop()
	}
	s := &DirectoryService{metrics: m, log: log}

	loaded, err := LoadCatalog(ctx, repos, log)
	if err != nil {
		log.Errorw("catalog_unavailable", "err", err)
		s.loadErr = unavailable(err)
		return s
	}
	s.catalog = loaded.Catalog
	s.labels = loaded.Labels
	s.rejected = len(loaded.Rejected)
	m.SetCatalog(s.catalog.Len(), s.rejected)
	return s
}

// NewDirectoryServiceFromCatalog serves an already built catalog.
func NewDirectoryServiceFromCatalog(c *directory.Catalog, labels directory.Labels, m *metrics.Collector) *DirectoryService {
	m.SetCatalog(c.Len(), 0)
	return &DirectoryService{catalog: c, labels: labels, metrics: m, log: logger.Nop()}
}

func (s *DirectoryService) ready() error {
	if s.loadErr != nil {
		return s.loadErr
	}
	if s.catalog == nil {
		return directory.ErrCatalogUnavailable
	}
	return nil
}

// Browse runs the filter engine for one request and renders the result.
func (s *DirectoryService) Browse(ctx context.Context, q DirectoryQuery) (service_directory.DirectoryView, error) {
	if err := s.ready(); err != nil {
		return service_directory.DirectoryView{}, err
	}
	view, err := normalizeView(q.View)
	if err != nil {
		return service_directory.DirectoryView{}, err
	}

	state := directory.NewFilterState(q.Search, q.Category, q.Filters)
	if q.Selected != "" {
		rec, ok := s.catalog.ByID(q.Selected)
		if !ok {
			return service_directory.DirectoryView{}, fmt.Errorf("selected %q: %w", q.Selected, directory.ErrServiceNotFound)
		}
		state = directory.SelectRecord(state, &rec)
	}

	visible := directory.FilterCatalog(s.catalog.Records(), state)
	s.metrics.ObserveResultSize(len(visible))
	return renderView(state, visible, view), nil
}

// Record returns the detail of one service.
func (s *DirectoryService) Record(ctx context.Context, id string) (service_directory.ServiceDetail, error) {
	if err := s.ready(); err != nil {
		return service_directory.ServiceDetail{}, err
	}
	rec, ok := s.catalog.ByID(id)
	if !ok {
		return service_directory.ServiceDetail{}, fmt.Errorf("service %q: %w", id, directory.ErrServiceNotFound)
	}
	return toDetail(rec), nil
}

// Categories lists top-level categories in first-seen order.
func (s *DirectoryService) Categories(ctx context.Context) ([]service_directory.CategorySummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	names := s.catalog.Categories()
	out := make([]service_directory.CategorySummary, 0, len(names))
	for _, name := range names {
		records := s.catalog.InCategory(name)
		out = append(out, service_directory.CategorySummary{
			Name:          name,
			Slug:          directory.Slugify(name),
			Count:         len(records),
			Subcategories: directory.GroupBySubcategory(records).Keys(),
		})
	}
	return out, nil
}

// CategoryOverview builds the landing page of the category whose slugified
// name is slug: one card per subcategory, in first-seen order.
func (s *DirectoryService) CategoryOverview(ctx context.Context, slug string) (service_directory.CategoryOverview, error) {
	if err := s.ready(); err != nil {
		return service_directory.CategoryOverview{}, err
	}
	name, ok := s.catalog.CategoryBySlug(slug)
	if !ok {
		return service_directory.CategoryOverview{}, fmt.Errorf("category %q: %w", slug, directory.ErrCategoryNotFound)
	}

	records := s.catalog.InCategory(name)
	groups := directory.GroupBySubcategory(records)
	cards := make([]service_directory.SubcategoryCard, 0, len(groups))
	for _, g := range groups {
		cards = append(cards, s.subcategoryCard(g))
	}
	return service_directory.CategoryOverview{
		Name:          name,
		Slug:          slug,
		Count:         len(records),
		Subcategories: cards,
	}, nil
}

func (s *DirectoryService) subcategoryCard(g directory.Group) service_directory.SubcategoryCard {
	info := s.labels.Lookup(g.Subcategory)

	image := defaultCardImage
	if len(g.Records) > 0 && g.Records[0].Image != "" {
		image = g.Records[0].Image
	}
	samples := make([]string, 0, cardSampleCount)
	for _, r := range g.Records[:min(cardSampleCount, len(g.Records))] {
		samples = append(samples, r.Name)
	}

	return service_directory.SubcategoryCard{
		Key:         g.Subcategory,
		Title:       info.Title,
		Description: info.Description,
		Icon:        info.Icon,
		Image:       image,
		Samples:     samples,
		Count:       len(g.Records),
		CountLabel:  fmt.Sprintf("%d services in this category", len(g.Records)),
		Link:        directoryPath + "?category=" + url.QueryEscape(g.Subcategory),
	}
}

func (s *DirectoryService) FilterGroups() []directory.FilterGroup {
	return directory.FilterGroups()
}

func (s *DirectoryService) Health() service_directory.Health {
	if err := s.ready(); err != nil {
		return service_directory.Health{Status: healthDegraded, Error: err.Error()}
	}
	return service_directory.Health{Status: healthOK, Services: s.catalog.Len(), Rejected: s.rejected}
}

func normalizeView(v string) (string, error) {
	switch v {
	case "", service_directory.ViewGrid:
		return service_directory.ViewGrid, nil
	case service_directory.ViewList:
		return service_directory.ViewList, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidView, v)
	}
}

// renderView turns a state and its visible subset into the response shape.
func renderView(state models.FilterState, visible []models.ServiceRecord, view string) service_directory.DirectoryView {
	out := service_directory.DirectoryView{
		Heading:      "All Services",
		Subheading:   "Explore our comprehensive range of professional services",
		Count:        len(visible),
		CountLabel:   fmt.Sprintf("%d services available", len(visible)),
		View:         view,
		Services:     make([]service_directory.ServiceCard, 0, len(visible)),
		FilterGroups: filterGroupViews(state.ActiveFeatureFilters),
		State:        state,
	}
	if state.CategoryFilter != "" {
		label := directory.Humanize(state.CategoryFilter)
		out.Heading = label + " Services"
		out.Subheading = "Browse our selection of " + label + " services"
	}
	for _, r := range visible {
		out.Services = append(out.Services, toCard(r, view))
	}
	if state.SelectedRecord != nil {
		detail := toDetail(*state.SelectedRecord)
		out.Selected = &detail
	}
	return out
}

func filterGroupViews(active []string) []service_directory.FilterGroupView {
	groups := directory.FilterGroups()
	out := make([]service_directory.FilterGroupView, 0, len(groups))
	for _, g := range groups {
		gv := service_directory.FilterGroupView{Name: g.Name, Options: make([]service_directory.FilterOptionView, 0, len(g.Tags))}
		for _, tag := range g.Tags {
			gv.Options = append(gv.Options, service_directory.FilterOptionView{Tag: tag, Checked: slices.Contains(active, tag)})
		}
		out = append(out, gv)
	}
	return out
}

func toCard(r models.ServiceRecord, view string) service_directory.ServiceCard {
	features := r.Features
	if view == service_directory.ViewGrid {
		features = features[:min(gridFeatureCount, len(features))]
	}
	return service_directory.ServiceCard{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Subcategory: r.Subcategory,
		Image:       r.Image,
		Popular:     r.Popular,
		Features:    append([]string{}, features...),
	}
}

func toDetail(r models.ServiceRecord) service_directory.ServiceDetail {
	return service_directory.ServiceDetail{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		Image:        r.Image,
		Popular:      r.Popular,
		Price:        r.Price,
		TimeEstimate: r.TimeEstimate,
		Features:     append([]string{}, r.Features...),
	}
}
