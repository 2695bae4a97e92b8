package services

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
)

// In-memory repository doubles. The db argument is ignored everywhere; the
// services under test only forward it.

// testDB satisfies code paths that derive a fresh session from the handle.
var testDB = &gorm.DB{Config: &gorm.Config{}}

type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
	tokens map[string]*models.RefreshToken
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:  make(map[uint]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *memUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) FindByPhone(_ *gorm.DB, phone string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Phone == phone {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Phone == user.Phone {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) UpdateProfile(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.City = user.City
	stored.State = user.State
	stored.Qualification = user.Qualification
	stored.Experience = user.Experience
	stored.CurrentSalary = user.CurrentSalary
	stored.ExpectedSalary = user.ExpectedSalary
	stored.Domain = user.Domain
	stored.VehicleCategory = user.VehicleCategory
	stored.TrainingRole = user.TrainingRole
	return nil
}

func (r *memUserRepo) UpdateQuizResult(_ *gorm.DB, userID uint, status models.VerificationStatus, step, score, total int, attemptedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.VerificationStatus = status
	u.VerificationStep = step
	u.QuizScore = &score
	u.TotalQuestions = &total
	u.LastQuizAttempt = &attemptedAt
	return nil
}

func (r *memUserRepo) UpdateVerification(_ *gorm.DB, userID uint, status models.VerificationStatus, step int, score, total *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.VerificationStatus = status
	u.VerificationStep = step
	if score != nil {
		v := *score
		u.QuizScore = &v
	}
	if total != nil {
		v := *total
		u.TotalQuestions = &v
	}
	return nil
}

func (r *memUserRepo) SetVerificationStatus(_ *gorm.DB, userID uint, status models.VerificationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.VerificationStatus = status
	return nil
}

func (r *memUserRepo) SetAdminVerified(_ *gorm.DB, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsAdminVerified = true
	return nil
}

func (r *memUserRepo) ListPendingVerification(_ *gorm.DB) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if u.VerificationStatus == models.VerificationStep2Completed ||
			u.VerificationStatus == models.VerificationStep3Pending {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) SearchCandidates(_ *gorm.DB, criteria repositories.CandidateFilter) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if !models.IsCandidateRole(u.Role) {
			continue
		}
		if criteria.Role != "" && u.Role != criteria.Role {
			continue
		}
		if criteria.Domain != "" && u.Domain != criteria.Domain {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) CountAll(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *memUserRepo) CountByStatus(_ *gorm.DB, status models.VerificationStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.VerificationStatus == status {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) CountAdminVerified(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.IsAdminVerified {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) CreateRefreshToken(_ *gorm.DB, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *memUserRepo) FindRefreshToken(_ *gorm.DB, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *memUserRepo) DeleteRefreshToken(_ *gorm.DB, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *memUserRepo) CleanExpiredRefreshTokens(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for key, t := range r.tokens {
		if time.Now().After(t.ExpiresAt) {
			delete(r.tokens, key)
			n++
		}
	}
	return n, nil
}

type memRecruiterRepo struct {
	mu         sync.Mutex
	nextID     uint
	recruiters map[uint]*models.Recruiter
}

func newMemRecruiterRepo() *memRecruiterRepo {
	return &memRecruiterRepo{recruiters: make(map[uint]*models.Recruiter)}
}

func (r *memRecruiterRepo) FindByID(_ *gorm.DB, id uint) (*models.Recruiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recruiters[id]
	if !ok {
		return nil, repositories.ErrRecruiterNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *memRecruiterRepo) FindByPhone(_ *gorm.DB, phone string) (*models.Recruiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recruiters {
		if rec.Phone == phone {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, repositories.ErrRecruiterNotFound
}

func (r *memRecruiterRepo) Create(_ *gorm.DB, recruiter *models.Recruiter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recruiters {
		if rec.Phone == recruiter.Phone {
			return repositories.ErrRecruiterAlreadyExists
		}
	}
	r.nextID++
	recruiter.ID = r.nextID
	copied := *recruiter
	r.recruiters[recruiter.ID] = &copied
	return nil
}

func (r *memRecruiterRepo) CountAll(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.recruiters)), nil
}

type memJobRepo struct {
	mu     sync.Mutex
	nextID uint
	jobs   map[uint]*models.JobPost
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[uint]*models.JobPost)}
}

func (r *memJobRepo) Create(_ *gorm.DB, job *models.JobPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	job.ID = r.nextID
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *memJobRepo) FindByID(_ *gorm.DB, id uint) (*models.JobPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *j
	return &copied, nil
}

func (r *memJobRepo) UpdateContent(_ *gorm.DB, job *models.JobPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.jobs[job.ID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	stored.Title = job.Title
	stored.Role = job.Role
	stored.Brand = job.Brand
	stored.Salary = job.Salary
	stored.Location = job.Location
	stored.Description = job.Description
	return nil
}

func (r *memJobRepo) UpdateStatus(_ *gorm.DB, jobID uint, status models.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Status = status
	return nil
}

func (r *memJobRepo) ListPublic(_ *gorm.DB) ([]models.JobPost, error) {
	return r.listWhere(func(j *models.JobPost) bool {
		return j.IsActive && j.Status == models.JobStatusApproved
	})
}

func (r *memJobRepo) ListPending(_ *gorm.DB) ([]models.JobPost, error) {
	return r.listWhere(func(j *models.JobPost) bool {
		return j.Status == models.JobStatusPending
	})
}

func (r *memJobRepo) ListByRecruiter(_ *gorm.DB, recruiterID uint) ([]models.JobPost, error) {
	return r.listWhere(func(j *models.JobPost) bool {
		return j.RecruiterID == recruiterID
	})
}

func (r *memJobRepo) listWhere(keep func(*models.JobPost) bool) ([]models.JobPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPost
	for _, j := range r.jobs {
		if keep(j) {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (r *memJobRepo) FindApplicants(_ *gorm.DB, jobID uint) ([]models.User, error) {
	return nil, nil
}

func (r *memJobRepo) CountByStatus(_ *gorm.DB, status models.JobStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memJobRepo) CountAll(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.jobs)), nil
}

type memApplicationRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.JobApplication
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{}
}

func (r *memApplicationRepo) CreateIdempotent(_ *gorm.DB, application *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == application.UserID && row.JobPostID == application.JobPostID {
			return nil
		}
	}
	r.nextID++
	application.ID = r.nextID
	r.rows = append(r.rows, *application)
	return nil
}

func (r *memApplicationRepo) ListByUser(_ *gorm.DB, userID uint) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobApplication
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *memApplicationRepo) ListJobIDsByUser(_ *gorm.DB, userID uint) ([]uint, error) {
	apps, _ := r.ListByUser(nil, userID)
	ids := make([]uint, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.JobPostID)
	}
	return ids, nil
}

func (r *memApplicationRepo) CountAll(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

type memQuestionRepo struct {
	questions []models.VerificationQuestion
}

func (r *memQuestionRepo) SamplePool(_ *gorm.DB, filter repositories.QuestionFilter, limit int) ([]models.VerificationQuestion, error) {
	matchOptional := func(col *string, want string) bool {
		if want == "" || col == nil {
			return true
		}
		return *col == want
	}

	var out []models.VerificationQuestion
	for _, q := range r.questions {
		if q.Role != filter.Role {
			continue
		}
		if filter.Step != 0 && q.Step != filter.Step {
			continue
		}
		if !matchOptional(q.Domain, filter.Domain) ||
			!matchOptional(q.VehicleCategory, filter.VehicleCategory) ||
			!matchOptional(q.TrainingRole, filter.TrainingRole) {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memQuestionRepo) FindByIDs(_ *gorm.DB, ids []uint) ([]models.VerificationQuestion, error) {
	want := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []models.VerificationQuestion
	for _, q := range r.questions {
		if _, ok := want[q.ID]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(r.questions)), nil
}

type memLeaderboardRepo struct {
	mu   sync.Mutex
	best map[string]*models.QuizScore // "userID/day"
}

func newMemLeaderboardRepo() *memLeaderboardRepo {
	return &memLeaderboardRepo{best: make(map[string]*models.QuizScore)}
}

func lbKey(userID uint, day time.Time) string {
	return day.UTC().Format("2006-01-02") + "/" + strconv.FormatUint(uint64(userID), 10)
}

func (r *memLeaderboardRepo) UpsertBest(_ *gorm.DB, userID uint, day time.Time, score, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := lbKey(userID, day)
	if existing, ok := r.best[key]; ok {
		if score > existing.Score {
			existing.Score = score
		}
		existing.TotalQuestions = total
		return nil
	}
	r.best[key] = &models.QuizScore{
		UserID:         userID,
		Date:           day.UTC().Truncate(24 * time.Hour),
		Score:          score,
		TotalQuestions: total,
	}
	return nil
}

func (r *memLeaderboardRepo) TopForDay(_ *gorm.DB, day time.Time, limit int) ([]models.QuizScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.QuizScore
	wanted := day.UTC().Format("2006-01-02")
	for _, row := range r.best {
		if row.Date.Format("2006-01-02") == wanted {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memLeaderboardRepo) BestForUser(_ *gorm.DB, userID uint, day time.Time) (*models.QuizScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.best[lbKey(userID, day)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	return &copied, nil
}
