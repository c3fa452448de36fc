package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/restsystem/restaurant-api/internal/application/auth"
	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
	pkgjwt "github.com/restsystem/restaurant-api/pkg/jwt"
)

const (
	testSecret          = "test-secret-key-for-unit-tests"
	testIssuer          = "restaurant-api-test"
	testDefaultPassword = "password123"
)

// ──────────────────────────────────────────────────────────────────────────────
// Фейковые репозитории в памяти
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	nextID    int64
	byID      map[int64]entity.Employee
	positions map[int64]string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		nextID:    1,
		byID:      make(map[int64]entity.Employee),
		positions: make(map[int64]string),
	}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	r.byID[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byID[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByMail(_ context.Context, mail string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if e.Mail == mail {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) LatestPosition(_ context.Context, employeeID int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.positions[employeeID], nil
}

type fakeAccountRepo struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]entity.UserAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{nextID: 1, byEmail: make(map[string]entity.UserAccount)}
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*entity.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byEmail[email]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[a.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	a.AccountID = r.nextID
	r.nextID++
	r.byEmail[a.Email] = *a
	return nil
}

func (r *fakeAccountRepo) CreateIfAbsent(_ context.Context, a *entity.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[a.Email]; ok {
		return nil // уже есть, вставка молча пропускается
	}
	a.AccountID = r.nextID
	r.nextID++
	r.byEmail[a.Email] = *a
	return nil
}

// fakeTxRunner прогоняет колбэк без настоящей транзакции.
type fakeTxRunner struct {
	employees *fakeEmployeeRepo
	accounts  *fakeAccountRepo
}

func (r *fakeTxRunner) RunAuth(ctx context.Context, fn func(
	repository.EmployeeRepository,
	repository.AccountRepository,
) error) error {
	return fn(r.employees, r.accounts)
}

func newTestUseCase() (*auth.AuthUseCase, *fakeEmployeeRepo, *fakeAccountRepo) {
	employees := newFakeEmployeeRepo()
	accounts := newFakeAccountRepo()
	uc := auth.NewAuthUseCase(
		employees, accounts,
		&fakeTxRunner{employees: employees, accounts: accounts},
		auth.JWTConfig{Secret: testSecret, ExpHours: 24, Issuer: testIssuer},
		testDefaultPassword,
	)
	return uc, employees, accounts
}

// seedEmployee добавляет сотрудника с должностью, но без учётной записи.
func seedEmployee(t *testing.T, employees *fakeEmployeeRepo, name, mail, position string) int64 {
	t.Helper()
	e := &entity.Employee{FullName: name, Mail: mail}
	require.NoError(t, employees.Create(context.Background(), e))
	employees.mu.Lock()
	employees.positions[e.ID] = position
	employees.mu.Unlock()
	return e.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreatesEmployeeAndAccount(t *testing.T) {
	uc, _, accounts := newTestUseCase()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ivanov@rest.ru",
		Password: "secret1",
		Name:     "Иванов Иван",
		Role:     "Официант",
	})
	require.NoError(t, err)

	assert.Equal(t, "Пользователь успешно зарегистрирован", resp.Message)
	assert.Equal(t, "waiter", resp.User.Role, "каноническая роль выводится из текста")
	assert.Equal(t, "Официант", resp.User.RoleDisplay)

	account, err := accounts.GetByEmail(context.Background(), "ivanov@rest.ru")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "waiter", account.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash), []byte("secret1")),
		"пароль хранится bcrypt-хэшем")
}

func TestRegister_MissingFields_ReturnsInvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "x@rest.ru", Password: "", Name: "X", Role: "Повар",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DuplicateEmail_ReturnsAlreadyExists(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := dto.RegisterRequest{Email: "dup@rest.ru", Password: "p", Name: "N", Role: "Повар"}
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login и ленивое создание учётной записи
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ProvisionsAccountOnFirstLogin(t *testing.T) {
	uc, employees, accounts := newTestUseCase()
	seedEmployee(t, employees, "Петров Пётр", "petrov@rest.ru", "Менеджер зала")

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "petrov@rest.ru",
		Password: testDefaultPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, "Успешный вход", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "manager", resp.User.Role)
	assert.Equal(t, "Менеджер зала", resp.User.RoleDisplay)

	account, err := accounts.GetByEmail(context.Background(), "petrov@rest.ru")
	require.NoError(t, err)
	require.NotNil(t, account, "первый вход создаёт учётную запись")
}

func TestLogin_ProvisioningIsIdempotent(t *testing.T) {
	uc, employees, accounts := newTestUseCase()
	seedEmployee(t, employees, "Сидоров", "sidorov@rest.ru", "Повар")

	for i := 0; i < 3; i++ {
		_, err := uc.Login(context.Background(), dto.LoginRequest{
			Email: "sidorov@rest.ru", Password: testDefaultPassword,
		})
		require.NoError(t, err)
	}

	accounts.mu.Lock()
	defer accounts.mu.Unlock()
	assert.Len(t, accounts.byEmail, 1, "повторные входы не плодят записи")
}

func TestLogin_ConcurrentFirstLogins_SingleAccount(t *testing.T) {
	uc, employees, accounts := newTestUseCase()
	seedEmployee(t, employees, "Кузнецов", "kuznetsov@rest.ru", "Бариста")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Login(context.Background(), dto.LoginRequest{
				Email: "kuznetsov@rest.ru", Password: testDefaultPassword,
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err, "гонка первых входов не должна всплывать ошибкой")
	}
	accounts.mu.Lock()
	defer accounts.mu.Unlock()
	assert.Len(t, accounts.byEmail, 1, "ровно одна учётная запись на email")
}

func TestLogin_UnknownEmail_ReturnsUserNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@rest.ru", Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_WrongPassword_ReturnsWrongPassword(t *testing.T) {
	uc, employees, _ := newTestUseCase()
	seedEmployee(t, employees, "Фёдоров", "fedorov@rest.ru", "Официант")

	// Первый вход создаёт запись с паролем по умолчанию.
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "fedorov@rest.ru", Password: testDefaultPassword,
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "fedorov@rest.ru", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestLogin_RoleRederivedFromCurrentPosition(t *testing.T) {
	uc, employees, _ := newTestUseCase()
	id := seedEmployee(t, employees, "Смирнов", "smirnov@rest.ru", "Официант")

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "smirnov@rest.ru", Password: testDefaultPassword,
	})
	require.NoError(t, err)

	// Повышение: снимок в учётной записи остался waiter, но роль
	// пересчитывается из актуальной должности.
	employees.mu.Lock()
	employees.positions[id] = "Менеджер зала"
	employees.mu.Unlock()

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "smirnov@rest.ru", Password: testDefaultPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", resp.User.Role)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "Менеджер зала", claims.RoleDisplay)
}

func TestLogin_NoAssignments_FallsBackToAccountSnapshot(t *testing.T) {
	uc, employees, _ := newTestUseCase()
	e := &entity.Employee{FullName: "Без назначений", Mail: "none@rest.ru"}
	require.NoError(t, employees.Create(context.Background(), e))

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "none@rest.ru", Password: testDefaultPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.User.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Profile
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_ReturnsEmployee(t *testing.T) {
	uc, employees, _ := newTestUseCase()
	id := seedEmployee(t, employees, "Новикова Анна", "novikova@rest.ru", "Аналитик")

	resp, err := uc.Profile(context.Background(), id, "analyst")
	require.NoError(t, err)
	assert.Equal(t, "Новикова Анна", resp.User.Name)
	assert.Equal(t, "analyst", resp.User.Role)
}

func TestProfile_UnknownID_ReturnsUserNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Profile(context.Background(), 999, "admin")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
