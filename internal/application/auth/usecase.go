package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
	"github.com/restsystem/restaurant-api/internal/domain/role"
	"github.com/restsystem/restaurant-api/pkg/jwt"
)

// JWTConfig — параметры выпуска токенов.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// TxRunner выполняет регистрацию атомарно: кадровая запись и учётная
// запись создаются в одной транзакции.
type TxRunner interface {
	RunAuth(ctx context.Context, fn func(
		employeeRepo repository.EmployeeRepository,
		accountRepo repository.AccountRepository,
	) error) error
}

// AuthUseCase — регистрация, вход и профиль.
type AuthUseCase struct {
	employeeRepo    repository.EmployeeRepository
	accountRepo     repository.AccountRepository
	txRunner        TxRunner
	jwtCfg          JWTConfig
	defaultPassword string
}

// NewAuthUseCase собирает кейс аутентификации.
func NewAuthUseCase(
	employeeRepo repository.EmployeeRepository,
	accountRepo repository.AccountRepository,
	txRunner TxRunner,
	jwtCfg JWTConfig,
	defaultPassword string,
) *AuthUseCase {
	return &AuthUseCase{
		employeeRepo:    employeeRepo,
		accountRepo:     accountRepo,
		txRunner:        txRunner,
		jwtCfg:          jwtCfg,
		defaultPassword: defaultPassword,
	}
}

// Register создаёт сотрудника и учётную запись. Роль приходит свободным
// текстом, каноническая роль выводится нормализатором.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}

	exists, err := uc.accountRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	normalized := role.Normalize(in.Role)

	employee := &entity.Employee{
		FullName:    in.Name,
		Mail:        in.Email,
		Experience:  "Новичок",
		Age:         25,
		Information: "Роль: " + in.Role,
	}

	err = uc.txRunner.RunAuth(ctx, func(
		employeeRepo repository.EmployeeRepository,
		accountRepo repository.AccountRepository,
	) error {
		if err := employeeRepo.Create(ctx, employee); err != nil {
			return err
		}
		return accountRepo.Create(ctx, &entity.UserAccount{
			EmployeeID:   employee.ID,
			Email:        in.Email,
			PasswordHash: string(hash),
			Role:         normalized,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message: "Пользователь успешно зарегистрирован",
		User: dto.UserResponse{
			ID:          employee.ID,
			Email:       employee.Mail,
			Name:        employee.FullName,
			Role:        normalized,
			RoleDisplay: in.Role,
		},
	}, nil
}

// Login проверяет пароль и выпускает токен. Роль каждый раз выводится
// заново из текста актуальной должности, снимок в учётной записи — только
// запасной вариант.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, employee, err := uc.provisionIfMissing(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}

	rawRole, err := uc.employeeRepo.LatestPosition(ctx, account.EmployeeID)
	if err != nil {
		return nil, err
	}
	if rawRole == "" {
		rawRole = account.Role
	}
	normalized := role.Normalize(rawRole)

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		account.EmployeeID, employee.Mail, employee.FullName,
		normalized, rawRole,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours,
	)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Успешный вход",
		Token:   token,
		User: dto.UserResponse{
			ID:          account.EmployeeID,
			Email:       employee.Mail,
			Name:        employee.FullName,
			Role:        normalized,
			RoleDisplay: rawRole,
		},
	}, nil
}

// Profile возвращает профиль по идентификатору из токена.
func (uc *AuthUseCase) Profile(ctx context.Context, employeeID int64, tokenRole string) (*dto.ProfileResponse, error) {
	employee, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.ProfileResponse{
		User: dto.UserResponse{
			ID:    employee.ID,
			Email: employee.Mail,
			Name:  employee.FullName,
			Role:  tokenRole,
		},
	}, nil
}

// provisionIfMissing возвращает учётную запись для email, при первом входе
// создавая её с паролем по умолчанию. (nil, nil, nil) — сотрудника с таким
// email нет. Вставка идёт через ON CONFLICT DO NOTHING: при одновременных
// первых входах выигрывает одна, обе стороны затем читают её.
func (uc *AuthUseCase) provisionIfMissing(ctx context.Context, email string) (*entity.UserAccount, *entity.Employee, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if account != nil {
		employee, err := uc.employeeRepo.GetByID(ctx, account.EmployeeID)
		if err != nil {
			return nil, nil, err
		}
		if employee == nil {
			return nil, nil, fmt.Errorf("учётная запись %d без сотрудника", account.AccountID)
		}
		return account, employee, nil
	}

	employee, err := uc.employeeRepo.GetByMail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if employee == nil {
		return nil, nil, nil
	}

	rawRole, err := uc.employeeRepo.LatestPosition(ctx, employee.ID)
	if err != nil {
		return nil, nil, err
	}
	if rawRole == "" {
		rawRole = role.Employee
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uc.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.accountRepo.CreateIfAbsent(ctx, &entity.UserAccount{
		EmployeeID:   employee.ID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role.Normalize(rawRole),
	}); err != nil {
		return nil, nil, err
	}

	// Читаем заново: при гонке запись могла вставить другая горутина.
	account, err = uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	return account, employee, nil
}
