// Package mock provides in-memory repository implementations for tests.
package mock

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
)

// Store backs every mock repository with shared in-memory tables so that
// cross-repository behavior (cascades, notifications) can be asserted.
type Store struct {
	mu sync.Mutex

	nextID        uint
	Users         map[uint]*models.User
	Profiles      map[uint]*models.Profile // keyed by user ID
	Posts         map[uint]*models.Post
	Comments      map[uint]*models.Comment
	Likes         map[uint]*models.Like
	Notifications map[uint]*models.Notification
	Categories    map[uint]*models.Category
	Sessions      map[string]*models.Session
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		Users:         map[uint]*models.User{},
		Profiles:      map[uint]*models.Profile{},
		Posts:         map[uint]*models.Post{},
		Comments:      map[uint]*models.Comment{},
		Likes:         map[uint]*models.Like{},
		Notifications: map[uint]*models.Notification{},
		Categories:    map[uint]*models.Category{},
		Sessions:      map[string]*models.Session{},
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// UserRepository returns a mock repositories.UserRepository over the store.
func (s *Store) UserRepository() repositories.UserRepository { return &userRepo{s} }

// ProfileRepository returns a mock repositories.ProfileRepository over the store.
func (s *Store) ProfileRepository() repositories.ProfileRepository { return &profileRepo{s} }

// PostRepository returns a mock repositories.PostRepository over the store.
func (s *Store) PostRepository() repositories.PostRepository { return &postRepo{s} }

// CommentRepository returns a mock repositories.CommentRepository over the store.
func (s *Store) CommentRepository() repositories.CommentRepository { return &commentRepo{s} }

// LikeRepository returns a mock repositories.LikeRepository over the store.
func (s *Store) LikeRepository() repositories.LikeRepository { return &likeRepo{s} }

// NotificationRepository returns a mock repositories.NotificationRepository over the store.
func (s *Store) NotificationRepository() repositories.NotificationRepository {
	return &notificationRepo{s}
}

// CategoryRepository returns a mock repositories.CategoryRepository over the store.
func (s *Store) CategoryRepository() repositories.CategoryRepository { return &categoryRepo{s} }

// SessionRepository returns a mock repositories.SessionRepository over the store.
func (s *Store) SessionRepository() repositories.SessionRepository { return &sessionRepo{s} }

// ---- users

type userRepo struct{ s *Store }

func (r *userRepo) CreateWithProfile(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if strings.EqualFold(u.Username, user.Username) || u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = r.s.id()
	user.CreatedAt = time.Now()
	profile := models.Profile{ID: r.s.id(), UserID: user.ID, AvatarURL: models.DefaultAvatarURL}
	user.Profile = profile
	cp := *user
	r.s.Users[user.ID] = &cp
	r.s.Profiles[user.ID] = &profile
	return nil
}

func (r *userRepo) GetUserByID(id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.Users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetUserByUsername(username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *userRepo) GetUserByEmail(email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *userRepo) UpdateUser(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, u := range r.s.Users {
		if u.ID == user.ID {
			continue
		}
		if strings.EqualFold(u.Username, user.Username) || u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	cp := *user
	r.s.Users[user.ID] = &cp
	return nil
}

func (r *userRepo) UsernameTaken(username string) (bool, error) {
	_, err := r.GetUserByUsername(username)
	if err == repositories.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *userRepo) EmailTaken(email string) (bool, error) {
	_, err := r.GetUserByEmail(email)
	if err == repositories.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

// ---- profiles

type profileRepo struct{ s *Store }

func (r *profileRepo) GetByUserID(userID uint) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Profiles[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *profileRepo) Update(profile *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Profiles[profile.UserID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *profile
	r.s.Profiles[profile.UserID] = &cp
	if u, ok := r.s.Users[profile.UserID]; ok {
		u.Profile = cp
	}
	return nil
}

// ---- posts

type postRepo struct{ s *Store }

func (r *postRepo) CreatePost(post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post.ID = r.s.id()
	post.CreatedAt = time.Now()
	if author, ok := r.s.Users[post.AuthorID]; ok {
		post.Author = *author
	}
	cp := *post
	r.s.Posts[post.ID] = &cp
	return nil
}

func (r *postRepo) GetPostByID(id uint) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	if author, ok := r.s.Users[p.AuthorID]; ok {
		cp.Author = *author
	}
	return &cp, nil
}

func (r *postRepo) IncrementViews(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Posts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Views++
	return nil
}

func (r *postRepo) sorted(filter func(*models.Post) bool) []models.Post {
	var posts []models.Post
	for _, p := range r.s.Posts {
		if filter == nil || filter(p) {
			cp := *p
			if author, ok := r.s.Users[p.AuthorID]; ok {
				cp.Author = *author
			}
			posts = append(posts, cp)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (r *postRepo) ListPosts() ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(nil), nil
}

func (r *postRepo) ListPostsByAuthor(authorID uint) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(p *models.Post) bool { return p.AuthorID == authorID }), nil
}

func (r *postRepo) ListRelated(excludeID uint, limit int) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	posts := r.sorted(func(p *models.Post) bool { return p.ID != excludeID })
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *postRepo) SearchByTitle(query string) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(query)
	return r.sorted(func(p *models.Post) bool {
		return strings.Contains(strings.ToLower(p.Title), q)
	}), nil
}

func (r *postRepo) UpdatePost(post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Posts[post.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *post
	r.s.Posts[post.ID] = &cp
	return nil
}

func (r *postRepo) DeletePost(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.Posts, id)
	for cid, c := range r.s.Comments {
		if c.PostID == id {
			delete(r.s.Comments, cid)
		}
	}
	for lid, l := range r.s.Likes {
		if l.PostID == id {
			delete(r.s.Likes, lid)
		}
	}
	for nid, n := range r.s.Notifications {
		if n.PostID != nil && *n.PostID == id {
			delete(r.s.Notifications, nid)
		}
	}
	return nil
}

func (r *postRepo) TotalViewsByAuthor(authorID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var total int64
	for _, p := range r.s.Posts {
		if p.AuthorID == authorID {
			total += int64(p.Views)
		}
	}
	return total, nil
}

// ---- comments

type commentRepo struct{ s *Store }

func (r *commentRepo) CreateComment(comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comment.ID = r.s.id()
	comment.CreatedAt = time.Now()
	cp := *comment
	r.s.Comments[comment.ID] = &cp
	return nil
}

func (r *commentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *commentRepo) ListByPost(postID uint) ([]models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var top []models.Comment
	for _, c := range r.s.Comments {
		if c.PostID != postID || c.ParentID != nil {
			continue
		}
		cp := *c
		for _, reply := range r.s.Comments {
			if reply.ParentID != nil && *reply.ParentID == c.ID {
				cp.Replies = append(cp.Replies, *reply)
			}
		}
		top = append(top, cp)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].ID < top[j].ID })
	return top, nil
}

func (r *commentRepo) DeleteComment(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Comments[id]; !ok {
		return repositories.ErrNotFound
	}
	for cid, c := range r.s.Comments {
		if c.ParentID != nil && *c.ParentID == id {
			delete(r.s.Comments, cid)
		}
	}
	delete(r.s.Comments, id)
	return nil
}

func (r *commentRepo) CountByPost(postID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, c := range r.s.Comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

// ---- likes

type likeRepo struct{ s *Store }

func (r *likeRepo) Toggle(postID, userID uint) (bool, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var liked bool
	removed := false
	for id, l := range r.s.Likes {
		if l.PostID == postID && l.UserID == userID {
			delete(r.s.Likes, id)
			removed = true
			break
		}
	}
	if !removed {
		id := r.s.id()
		r.s.Likes[id] = &models.Like{ID: id, PostID: postID, UserID: userID, CreatedAt: time.Now()}
		liked = true
	}
	var count int64
	for _, l := range r.s.Likes {
		if l.PostID == postID {
			count++
		}
	}
	return liked, count, nil
}

func (r *likeRepo) HasUserLikedPost(postID, userID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.Likes {
		if l.PostID == postID && l.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *likeRepo) CountByPost(postID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, l := range r.s.Likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

// ---- notifications

type notificationRepo struct{ s *Store }

func (r *notificationRepo) CreateNotification(n *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n.ID = r.s.id()
	n.CreatedAt = time.Now()
	cp := *n
	r.s.Notifications[n.ID] = &cp
	return nil
}

func (r *notificationRepo) ListAndMarkRead(recipientID uint) ([]models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Notification
	for _, n := range r.s.Notifications {
		if n.RecipientID == recipientID {
			out = append(out, *n)
			n.IsRead = true
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *notificationRepo) GetForRecipient(id, recipientID uint) (*models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.Notifications[id]
	if !ok || n.RecipientID != recipientID {
		return nil, repositories.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *notificationRepo) MarkAsRead(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.Notifications[id]
	if !ok {
		return repositories.ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (r *notificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, n := range r.s.Notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// ---- categories

type categoryRepo struct{ s *Store }

func (r *categoryRepo) CreateCategory(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.Categories {
		if c.Name == category.Name {
			return repositories.ErrDuplicate
		}
	}
	category.ID = r.s.id()
	cp := *category
	r.s.Categories[category.ID] = &cp
	return nil
}

func (r *categoryRepo) ListCategories() ([]models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Category
	for _, c := range r.s.Categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---- sessions

type sessionRepo struct{ s *Store }

func (r *sessionRepo) CreateSession(session *models.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *session
	r.s.Sessions[session.ID] = &cp
	return nil
}

func (r *sessionRepo) GetSession(id string) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.Sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, repositories.ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (r *sessionRepo) DeleteSession(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.Sessions, id)
	return nil
}

func (r *sessionRepo) DeleteExpired() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, sess := range r.s.Sessions {
		if time.Now().After(sess.ExpiresAt) {
			delete(r.s.Sessions, id)
		}
	}
	return nil
}
