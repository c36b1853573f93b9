package devapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

type account struct {
	user models.User
	hash []byte
}

// memoryDB is the fake backend's state. It is safe for concurrent use.
type memoryDB struct {
	mu        sync.RWMutex
	cost      int
	accounts  map[string]*account
	byEmail   map[string]string
	exercises map[string]*models.Exercise
	now       func() time.Time
}

func newMemoryDB(cost int) *memoryDB {
	return &memoryDB{
		cost:      cost,
		accounts:  make(map[string]*account),
		byEmail:   make(map[string]string),
		exercises: make(map[string]*models.Exercise),
		now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (db *memoryDB) createUser(name, email, password, phone string, role models.Role, personalID string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), db.cost)
	if err != nil {
		return models.User{}, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	key := normalizeEmail(email)
	if _, ok := db.byEmail[key]; ok {
		return models.User{}, ErrEmailTaken
	}

	u := models.User{
		ID:         uuid.NewString(),
		Email:      key,
		Name:       strings.TrimSpace(name),
		Phone:      phone,
		Role:       role,
		PersonalID: personalID,
		CreatedAt:  db.now().UTC(),
	}
	db.accounts[u.ID] = &account{user: u, hash: hash}
	db.byEmail[key] = u.ID
	return u, nil
}

func (db *memoryDB) authenticate(email, password string) (models.User, error) {
	db.mu.RLock()
	id, ok := db.byEmail[normalizeEmail(email)]
	var acc *account
	if ok {
		acc = db.accounts[id]
	}
	db.mu.RUnlock()

	if acc == nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

func (db *memoryDB) user(id string) (models.User, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	acc, ok := db.accounts[id]
	if !ok {
		return models.User{}, false
	}
	return acc.user, true
}

func (db *memoryDB) students(personalID string) []models.Student {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := []models.Student{}
	for _, acc := range db.accounts {
		if acc.user.Role == models.RoleStudent && acc.user.PersonalID == personalID {
			out = append(out, models.Student{User: acc.user, Count: &models.StudentCount{}})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (db *memoryDB) student(personalID, id string) (models.Student, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	acc, ok := db.accounts[id]
	if !ok || acc.user.Role != models.RoleStudent || acc.user.PersonalID != personalID {
		return models.Student{}, ErrNotFound
	}
	return models.Student{User: acc.user, Count: &models.StudentCount{}}, nil
}

func (db *memoryDB) updateStudent(personalID, id string, data models.UpdateStudentData) (models.Student, error) {
	var hash []byte
	if data.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*data.Password), db.cost)
		if err != nil {
			return models.Student{}, err
		}
		hash = h
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	acc, ok := db.accounts[id]
	if !ok || acc.user.Role != models.RoleStudent || acc.user.PersonalID != personalID {
		return models.Student{}, ErrNotFound
	}

	if data.Email != nil {
		key := normalizeEmail(*data.Email)
		if owner, taken := db.byEmail[key]; taken && owner != id {
			return models.Student{}, ErrEmailTaken
		}
		delete(db.byEmail, acc.user.Email)
		db.byEmail[key] = id
		acc.user.Email = key
	}
	if data.Name != nil {
		acc.user.Name = strings.TrimSpace(*data.Name)
	}
	if data.Phone != nil {
		acc.user.Phone = *data.Phone
	}
	if hash != nil {
		acc.hash = hash
	}
	return models.Student{User: acc.user, Count: &models.StudentCount{}}, nil
}

func (db *memoryDB) deleteStudent(personalID, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	acc, ok := db.accounts[id]
	if !ok || acc.user.Role != models.RoleStudent || acc.user.PersonalID != personalID {
		return ErrNotFound
	}
	delete(db.byEmail, acc.user.Email)
	delete(db.accounts, id)
	return nil
}

func (db *memoryDB) listExercises(muscleGroup string) []models.Exercise {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := []models.Exercise{}
	for _, e := range db.exercises {
		if muscleGroup != "" && !strings.EqualFold(e.MuscleGroup, muscleGroup) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (db *memoryDB) exercise(id string) (models.Exercise, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	e, ok := db.exercises[id]
	if !ok {
		return models.Exercise{}, ErrNotFound
	}
	return *e, nil
}

func (db *memoryDB) createExercise(data models.CreateExerciseData) models.Exercise {
	e := models.Exercise{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(data.Name),
		Description: data.Description,
		VideoURL:    data.VideoURL,
		MuscleGroup: data.MuscleGroup,
		Equipment:   data.Equipment,
	}

	db.mu.Lock()
	db.exercises[e.ID] = &e
	db.mu.Unlock()
	return e
}

func (db *memoryDB) updateExercise(id string, data models.UpdateExerciseData) (models.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e, ok := db.exercises[id]
	if !ok {
		return models.Exercise{}, ErrNotFound
	}
	if data.Name != nil {
		e.Name = strings.TrimSpace(*data.Name)
	}
	if data.Description != nil {
		e.Description = *data.Description
	}
	if data.VideoURL != nil {
		e.VideoURL = *data.VideoURL
	}
	if data.MuscleGroup != nil {
		e.MuscleGroup = *data.MuscleGroup
	}
	if data.Equipment != nil {
		e.Equipment = *data.Equipment
	}
	return *e, nil
}

func (db *memoryDB) deleteExercise(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.exercises[id]; !ok {
		return ErrNotFound
	}
	delete(db.exercises, id)
	return nil
}
