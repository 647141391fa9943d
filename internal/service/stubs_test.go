package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/lostfound-api/internal/models"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
	"github.com/noah-isme/lostfound-api/pkg/jobs"
	"github.com/noah-isme/lostfound-api/pkg/storage"
)

var (
	studentOwner = models.User{ID: "owner", Username: "bob", Email: "bob@example.com", FirstName: "Bob", Role: models.RoleStudent}
	studentOther = models.User{ID: "other", Username: "carol", Email: "carol@example.com", FirstName: "Carol", Role: models.RoleStudent}
	adminUser    = models.User{ID: "admin", Username: "ada", Email: "ada@example.com", FirstName: "Ada", Role: models.RoleAdmin}
)

// stubReportRepo keeps reports in memory with cascade semantics on delete.
type stubReportRepo struct {
	mu      sync.Mutex
	nextID  int64
	reports map[int64]*models.ReportDetail
	users   map[string]models.User
	claims  *stubClaimRepo
	listErr error
	lists   int
}

func newStubReportRepo(users ...models.User) *stubReportRepo {
	r := &stubReportRepo{reports: map[int64]*models.ReportDetail{}, users: map[string]models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubReportRepo) Create(ctx context.Context, report *models.Report, lost *models.LostItem, found *models.FoundItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if (lost == nil) == (found == nil) {
		return errors.New("exactly one sub-item required")
	}
	r.nextID++
	report.ID = r.nextID
	detail := &models.ReportDetail{Report: *report}
	owner := r.users[report.ReportedBy]
	detail.Reporter = owner.Summary()
	if lost != nil {
		lost.ID, lost.ReportID = r.nextID, r.nextID
		copyLost := *lost
		detail.LostItem = &copyLost
	} else {
		found.ID, found.ReportID = r.nextID, r.nextID
		copyFound := *found
		detail.FoundItem = &copyFound
	}
	r.reports[report.ID] = detail
	return nil
}

func (r *stubReportRepo) FindByID(ctx context.Context, id int64) (*models.ReportDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	detail, ok := r.reports[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *detail
	if detail.LostItem != nil {
		item := *detail.LostItem
		clone.LostItem = &item
	}
	if detail.FoundItem != nil {
		item := *detail.FoundItem
		clone.FoundItem = &item
	}
	return &clone, nil
}

func (r *stubReportRepo) List(ctx context.Context, filter models.ReportFilter) ([]models.ReportDetail, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	var out []models.ReportDetail
	for _, d := range r.reports {
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, len(out), nil
}

func (r *stubReportRepo) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.reports[id]
	if !ok {
		return sql.ErrNoRows
	}
	d.Status = status
	return nil
}

func (r *stubReportRepo) UpdateLostItem(ctx context.Context, item *models.LostItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.reports[item.ReportID]
	if !ok || d.LostItem == nil {
		return sql.ErrNoRows
	}
	copyItem := *item
	d.LostItem = &copyItem
	return nil
}

func (r *stubReportRepo) UpdateFoundItem(ctx context.Context, item *models.FoundItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.reports[item.ReportID]
	if !ok || d.FoundItem == nil {
		return sql.ErrNoRows
	}
	copyItem := *item
	d.FoundItem = &copyItem
	return nil
}

func (r *stubReportRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.reports, id)
	if r.claims != nil {
		r.claims.deleteForReport(id)
	}
	return nil
}

func (r *stubReportRepo) status(id int64) models.ReportStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.reports[id]; ok {
		return d.Status
	}
	return ""
}

type stubClaimRepo struct {
	mu     sync.Mutex
	nextID int64
	claims map[int64]*models.ClaimDetail
	users  map[string]models.User
	err    error
}

func newStubClaimRepo(users ...models.User) *stubClaimRepo {
	r := &stubClaimRepo{claims: map[int64]*models.ClaimDetail{}, users: map[string]models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubClaimRepo) Create(ctx context.Context, claim *models.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	claim.ID = r.nextID
	claimant := r.users[claim.ClaimedBy]
	r.claims[claim.ID] = &models.ClaimDetail{Claim: *claim, Claimant: claimant.Summary()}
	return nil
}

func (r *stubClaimRepo) FindByID(ctx context.Context, id int64) (*models.ClaimDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.claims[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *c
	return &clone, nil
}

func (r *stubClaimRepo) List(ctx context.Context, filter models.ClaimFilter) ([]models.ClaimDetail, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ClaimDetail
	for _, c := range r.claims {
		if filter.ClaimedBy != "" && c.ClaimedBy != filter.ClaimedBy {
			continue
		}
		if filter.ReportID != nil && c.ReportID != *filter.ReportID {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (r *stubClaimRepo) Update(ctx context.Context, claim *models.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.claims[claim.ID]
	if !ok {
		return sql.ErrNoRows
	}
	c.Claim = *claim
	return nil
}

func (r *stubClaimRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.claims[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.claims, id)
	return nil
}

func (r *stubClaimRepo) deleteForReport(reportID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.claims {
		if c.ReportID == reportID {
			delete(r.claims, id)
		}
	}
}

func (r *stubClaimRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.claims)
}

type stubNotificationRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*models.Notification
	err    error
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{items: map[int64]*models.Notification{}}
}

func (r *stubNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	n.ID = r.nextID
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	clone := *n
	r.items[n.ID] = &clone
	return nil
}

func (r *stubNotificationRepo) FindByID(ctx context.Context, id int64) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.items {
		if n.UserID != filter.UserID {
			continue
		}
		if filter.IsRead != nil && n.IsRead != *filter.IsRead {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, len(out), nil
}

func (r *stubNotificationRepo) SetRead(ctx context.Context, id int64, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	n.IsRead = read
	return nil
}

func (r *stubNotificationRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *stubNotificationRepo) forUser(userID string) []models.Notification {
	items, _, _ := r.List(context.Background(), models.NotificationFilter{UserID: userID})
	return items
}

type stubActivityRepo struct {
	mu          sync.Mutex
	activities  []models.ActivityLog
	resolutions []models.ResolutionLog
	err         error
}

func (r *stubActivityRepo) CreateActivity(ctx context.Context, entry *models.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	entry.ID = int64(len(r.activities) + 1)
	r.activities = append(r.activities, *entry)
	return nil
}

func (r *stubActivityRepo) ListActivity(ctx context.Context, filter models.LogFilter) ([]models.ActivityLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ActivityLog
	for _, a := range r.activities {
		if filter.Action != "" && a.Action != filter.Action {
			continue
		}
		out = append(out, a)
	}
	return out, len(out), nil
}

func (r *stubActivityRepo) CreateResolution(ctx context.Context, entry *models.ResolutionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	entry.ID = int64(len(r.resolutions) + 1)
	r.resolutions = append(r.resolutions, *entry)
	return nil
}

func (r *stubActivityRepo) ListResolution(ctx context.Context, filter models.LogFilter) ([]models.ResolutionLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	page, size := models.NormalizePage(filter.Page, filter.PageSize)
	start := (page - 1) * size
	if start >= len(r.resolutions) {
		return nil, len(r.resolutions), nil
	}
	end := start + size
	if end > len(r.resolutions) {
		end = len(r.resolutions)
	}
	return append([]models.ResolutionLog(nil), r.resolutions[start:end]...), len(r.resolutions), nil
}

func (r *stubActivityRepo) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, a.Action)
	}
	return out
}

type stubUploader struct {
	uploaded []storage.Object
	deleted  []string
	err      error
}

func (u *stubUploader) Upload(ctx context.Context, obj storage.Object) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	if _, err := io.ReadAll(obj.Body); err != nil {
		return "", err
	}
	u.uploaded = append(u.uploaded, obj)
	return "https://media.example.com/" + obj.Key, nil
}

func (u *stubUploader) Delete(ctx context.Context, url string) error {
	u.deleted = append(u.deleted, url)
	return nil
}

type stubQueue struct {
	jobs []jobs.Job
}

func (q *stubQueue) Enqueue(job jobs.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events map[string][]string
	err    error
}

func (p *stubPublisher) Publish(userID, event string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	if p.events == nil {
		p.events = map[string][]string{}
	}
	p.events[userID] = append(p.events[userID], event)
	return nil
}

type stubCacheRepo struct {
	mu      sync.Mutex
	entries map[string]interface{}
	deletes []string
}

func (c *stubCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	page, ok := v.(*ReportPage)
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*ReportPage)) = *page
	return nil
}

func (c *stubCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = map[string]interface{}{}
	}
	c.entries[key] = value
	return nil
}

func (c *stubCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, pattern)
	c.entries = map[string]interface{}{}
	return nil
}

// workflow bundles the report, claim and notification services over shared stubs.
type workflow struct {
	reports       *stubReportRepo
	claimsRepo    *stubClaimRepo
	notifications *stubNotificationRepo
	activityRepo  *stubActivityRepo
	uploader      *stubUploader
	queue         *stubQueue
	publisher     *stubPublisher

	reportSvc       *ReportService
	claimSvc        *ClaimService
	notificationSvc *NotificationService
	activitySvc     *ActivityService
}

func newWorkflow() *workflow {
	users := []models.User{studentOwner, studentOther, adminUser}
	w := &workflow{
		reports:       newStubReportRepo(users...),
		claimsRepo:    newStubClaimRepo(users...),
		notifications: newStubNotificationRepo(),
		activityRepo:  &stubActivityRepo{},
		uploader:      &stubUploader{},
		queue:         &stubQueue{},
		publisher:     &stubPublisher{},
	}
	w.reports.claims = w.claimsRepo
	w.activitySvc = NewActivityService(w.activityRepo, nil)
	w.notificationSvc = NewNotificationService(w.notifications, w.publisher, nil, nil, nil)
	w.reportSvc = NewReportService(w.reports, w.claimsRepo, w.notificationSvc, w.activitySvc, nil, nil, ReportServiceOptions{
		Uploader:       w.uploader,
		Cleanup:        w.queue,
		MaxUploadBytes: 1024,
	})
	w.claimSvc = NewClaimService(w.claimsRepo, w.reports, w.notificationSvc, w.activitySvc, nil, nil)
	return w
}
