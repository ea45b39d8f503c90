package usecase_test

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"vidtube-backend/internal/user/domain"
)

// fakeUserRepo is an in-memory UserRepository with the same observable
// behavior as the GORM implementation: (nil, nil) on missing records and a
// conditional refresh-token rotation.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsernameOrEmail(username, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if (username != "" && user.Username == username) || (email != "" && user.Email == email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateRefreshToken(userID, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.RefreshToken = refreshToken
		user.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeUserRepo) RotateRefreshToken(userID, expected, replacement string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok || user.RefreshToken != expected {
		return false, nil
	}
	user.RefreshToken = replacement
	user.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeUserRepo) UpdatePasswordHash(userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.PasswordHash = passwordHash
		user.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeUserRepo) UpdateAccount(userID, fullName, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	user.FullName = fullName
	user.Email = email
	user.UpdatedAt = time.Now()
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) UpdateAvatar(userID, avatarURL string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	user.AvatarURL = avatarURL
	user.UpdatedAt = time.Now()
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) UpdateCoverImage(userID, coverImageURL string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	user.CoverImageURL = coverImageURL
	user.UpdatedAt = time.Now()
	clone := *user
	return &clone, nil
}

// storedHash reads the persisted hash directly, bypassing sanitization.
func (r *fakeUserRepo) storedHash(userID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		return user.PasswordHash
	}
	return ""
}

func (r *fakeUserRepo) storedRefreshToken(userID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		return user.RefreshToken
	}
	return ""
}

type fakeSubscriptionRepo struct {
	// pairs of (subscriberID, channelID)
	pairs [][2]string
}

func (r *fakeSubscriptionRepo) CountSubscribers(channelID string) (int64, error) {
	var count int64
	for _, pair := range r.pairs {
		if pair[1] == channelID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSubscriptionRepo) CountSubscribedTo(subscriberID string) (int64, error) {
	var count int64
	for _, pair := range r.pairs {
		if pair[0] == subscriberID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSubscriptionRepo) IsSubscribed(subscriberID, channelID string) (bool, error) {
	for _, pair := range r.pairs {
		if pair[0] == subscriberID && pair[1] == channelID {
			return true, nil
		}
	}
	return false, nil
}

type watchedVideo struct {
	video     domain.Video
	watchedAt time.Time
}

type fakeWatchHistoryRepo struct {
	byUser map[string][]watchedVideo
}

func newFakeWatchHistoryRepo() *fakeWatchHistoryRepo {
	return &fakeWatchHistoryRepo{byUser: make(map[string][]watchedVideo)}
}

func (r *fakeWatchHistoryRepo) Append(userID, videoID string) error {
	r.byUser[userID] = append(r.byUser[userID], watchedVideo{
		video:     domain.Video{ID: videoID},
		watchedAt: time.Now(),
	})
	return nil
}

func (r *fakeWatchHistoryRepo) add(userID string, video domain.Video, watchedAt time.Time) {
	r.byUser[userID] = append(r.byUser[userID], watchedVideo{video: video, watchedAt: watchedAt})
}

func (r *fakeWatchHistoryRepo) ListByUser(userID string) ([]*domain.Video, error) {
	entries := append([]watchedVideo(nil), r.byUser[userID]...)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].watchedAt.After(entries[j].watchedAt)
	})
	videos := make([]*domain.Video, 0, len(entries))
	for i := range entries {
		videos = append(videos, &entries[i].video)
	}
	return videos, nil
}

// fakeUploader mirrors the upload contract: an empty URL on failure, never an
// error.
type fakeUploader struct {
	fail bool
}

func (u *fakeUploader) Upload(localFilePath string) string {
	if u.fail || localFilePath == "" {
		return ""
	}
	return "https://cdn.example.com/" + localFilePath
}
