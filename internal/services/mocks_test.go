package services

import (
	"sort"
	"time"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
)

// In-memory fakes backing the service tests. They implement the
// repository interfaces over plain maps so the business rules can be
// exercised without a database.

type fakeUserRepo struct {
	users  map[string]*models.User
	tokens map[string]*models.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.VerificationToken == token && token != "" {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ListMentors(page, pageSize int) ([]models.User, int64, error) {
	var mentors []models.User
	for _, u := range r.users {
		if u.Role == models.UserRoleMentor && u.Status == models.UserStatusActive {
			mentors = append(mentors, *u)
		}
	}
	sort.Slice(mentors, func(i, j int) bool {
		return mentors[i].Mentor.AverageRating > mentors[j].Mentor.AverageRating
	})
	return mentors, int64(len(mentors)), nil
}

func (r *fakeUserRepo) ApplyMenteeCompletion(menteeID string, hours float64) error {
	user, err := r.FindByID(menteeID)
	if err != nil {
		return err
	}
	user.Mentee.CompletedSessions++
	user.Mentee.HoursLearned += hours
	return nil
}

func (r *fakeUserRepo) IncrementMentorSessions(mentorID string) error {
	user, err := r.FindByID(mentorID)
	if err != nil {
		return err
	}
	user.Mentor.TotalSessions++
	return nil
}

func (r *fakeUserRepo) UpdateMentorRating(mentorID string, average float64, count int) error {
	user, err := r.FindByID(mentorID)
	if err != nil {
		return err
	}
	user.Mentor.AverageRating = average
	user.Mentor.TotalReviews = count
	return nil
}

func (r *fakeUserRepo) UpdateMenteeRating(menteeID string, average float64, count int) error {
	user, err := r.FindByID(menteeID)
	if err != nil {
		return err
	}
	user.Mentee.AverageRating = average
	user.Mentee.TotalReviews = count
	return nil
}

func (r *fakeUserRepo) UpdateActiveCounters(mentorID string, activeStudents int, menteeID string, activeMentors int) error {
	if mentor, err := r.FindByID(mentorID); err == nil {
		mentor.Mentor.ActiveStudents = activeStudents
	}
	if mentee, err := r.FindByID(menteeID); err == nil {
		mentee.Mentee.ActiveMentors = activeMentors
	}
	return nil
}

func (r *fakeUserRepo) SaveRefreshToken(token *models.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	rt, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	return rt, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteExpiredRefreshTokens() error {
	for key, rt := range r.tokens {
		if time.Now().After(rt.ExpiresAt) {
			delete(r.tokens, key)
		}
	}
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) add(booking *models.Booking) *models.Booking {
	r.bookings[booking.ID] = booking
	return booking
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) FindByID(id string) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, repositories.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) FindByMentee(menteeID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return b.UserID == menteeID }), nil
}

func (r *fakeBookingRepo) FindByMentor(mentorID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return b.MentorID == mentorID }), nil
}

func (r *fakeBookingRepo) Update(booking *models.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return repositories.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func (r *fakeBookingRepo) SetRating(id string, rating int, review string) error {
	booking, ok := r.bookings[id]
	if !ok {
		return repositories.ErrBookingNotFound
	}
	booking.Rating = &rating
	booking.Review = review
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) FindRatedCompletedByMentor(mentorID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool {
		return b.MentorID == mentorID && b.Status == models.BookingStatusCompleted &&
			b.Rating != nil && *b.Rating >= 1
	}), nil
}

func (r *fakeBookingRepo) FindRatedCompletedByMentee(menteeID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool {
		return b.UserID == menteeID && b.Status == models.BookingStatusCompleted &&
			b.Rating != nil && *b.Rating >= 1
	}), nil
}

func (r *fakeBookingRepo) FindCompletedByMenteeAsc(menteeID string) ([]models.Booking, error) {
	completed := r.filter(func(b *models.Booking) bool {
		return b.UserID == menteeID && b.Status == models.BookingStatusCompleted
	})
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].Date.Before(completed[j].Date)
	})
	return completed, nil
}

func (r *fakeBookingRepo) CountDistinctStudents(mentorID string) (int, error) {
	seen := make(map[string]struct{})
	for _, b := range r.bookings {
		if b.MentorID == mentorID &&
			(b.Status == models.BookingStatusConfirmed || b.Status == models.BookingStatusCompleted) {
			seen[b.UserID] = struct{}{}
		}
	}
	return len(seen), nil
}

func (r *fakeBookingRepo) CountDistinctMentors(menteeID string) (int, error) {
	seen := make(map[string]struct{})
	for _, b := range r.bookings {
		if b.UserID == menteeID &&
			(b.Status == models.BookingStatusConfirmed || b.Status == models.BookingStatusCompleted) {
			seen[b.MentorID] = struct{}{}
		}
	}
	return len(seen), nil
}

func (r *fakeBookingRepo) filter(keep func(*models.Booking) bool) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

type sentEvent struct {
	Email string
	Type  string
	Data  any
}

type fakeNotifier struct {
	events []sentEvent
}

func (n *fakeNotifier) SendToUser(email string, eventType string, data any) {
	n.events = append(n.events, sentEvent{Email: email, Type: eventType, Data: data})
}

type fakeChatRepo struct {
	requests map[string]*models.ChatRequest
	messages []*models.Message
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{requests: make(map[string]*models.ChatRequest)}
}

func (r *fakeChatRepo) CreateRequest(req *models.ChatRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *fakeChatRepo) FindRequestByID(id string) (*models.ChatRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, repositories.ErrChatRequestNotFound
	}
	return req, nil
}

func (r *fakeChatRepo) FindRequestBetween(userA, userB string) (*models.ChatRequest, error) {
	for _, req := range r.requests {
		if (req.SenderID == userA && req.ReceiverID == userB) ||
			(req.SenderID == userB && req.ReceiverID == userA) {
			return req, nil
		}
	}
	return nil, repositories.ErrChatRequestNotFound
}

func (r *fakeChatRepo) UpdateRequestStatus(id string, status models.ChatRequestStatus) error {
	req, ok := r.requests[id]
	if !ok {
		return repositories.ErrChatRequestNotFound
	}
	req.Status = status
	return nil
}

func (r *fakeChatRepo) FindIncomingRequests(userID string) ([]models.ChatRequest, error) {
	var out []models.ChatRequest
	for _, req := range r.requests {
		if req.ReceiverID == userID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) FindOutgoingRequests(userID string) ([]models.ChatRequest, error) {
	var out []models.ChatRequest
	for _, req := range r.requests {
		if req.SenderID == userID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) HasApprovedRequestBetween(userA, userB string) (bool, error) {
	req, err := r.FindRequestBetween(userA, userB)
	if err != nil {
		return false, nil
	}
	return req.Status == models.ChatRequestStatusApproved, nil
}

func (r *fakeChatRepo) CreateMessage(msg *models.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeChatRepo) FindMessagesByConversation(conversationID string, limit, offset int) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) MarkConversationRead(conversationID, readerID string) error {
	for _, m := range r.messages {
		if m.ConversationID == conversationID && m.ReceiverID == readerID {
			m.Read = true
		}
	}
	return nil
}

func (r *fakeChatRepo) CountUnread(userID string) (int64, error) {
	var count int64
	for _, m := range r.messages {
		if m.ReceiverID == userID && !m.Read {
			count++
		}
	}
	return count, nil
}
