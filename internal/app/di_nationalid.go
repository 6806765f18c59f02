package app

import (
	"context"
	"fmt"
	"sync"

	nationalidHTTP "github.com/dernekportal/tcguard/internal/nationalid/http"
	nationalidRepository "github.com/dernekportal/tcguard/internal/nationalid/repository"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

type nationalidComponents struct {
	settingRepository     nationalidUseCase.SettingRepository
	beneficiaryRepository nationalidUseCase.BeneficiaryRepository
	dependentRepository   nationalidUseCase.DependentRepository
	auditLogRepository    nationalidUseCase.AuditLogRepository
	signingKey            []byte
	auditLogUseCase       nationalidUseCase.AuditLogUseCase
	auditLogger           nationalidService.AuditLogger
	accessGuard           nationalidUseCase.AccessGuard
	hasher                nationalidService.Hasher
	beneficiaryUseCase    nationalidUseCase.BeneficiaryUseCase
	dependentUseCase      nationalidUseCase.DependentUseCase
	migrationUseCase      nationalidUseCase.MigrationUseCase
	saltUseCase           nationalidUseCase.SaltUseCase
	beneficiaryHandler    *nationalidHTTP.BeneficiaryHandler
	dependentHandler      *nationalidHTTP.DependentHandler
	auditLogHandler       *nationalidHTTP.AuditLogHandler
	legacyHandler         *nationalidHTTP.LegacyHandler

	settingRepositoryInit     sync.Once
	beneficiaryRepositoryInit sync.Once
	dependentRepositoryInit   sync.Once
	auditLogRepositoryInit    sync.Once
	signingKeyInit            sync.Once
	auditLogUseCaseInit       sync.Once
	auditLoggerInit           sync.Once
	accessGuardInit           sync.Once
	hasherInit                sync.Once
	beneficiaryUseCaseInit    sync.Once
	dependentUseCaseInit      sync.Once
	migrationUseCaseInit      sync.Once
	saltUseCaseInit           sync.Once
	beneficiaryHandlerInit    sync.Once
	dependentHandlerInit      sync.Once
	auditLogHandlerInit       sync.Once
	legacyHandlerInit         sync.Once
}

// SettingRepository returns the settings repository for the configured driver.
func (c *Container) SettingRepository() (nationalidUseCase.SettingRepository, error) {
	var err error
	c.settingRepositoryInit.Do(func() {
		c.settingRepository, err = c.initSettingRepository()
		if err != nil {
			c.initErrors["settingRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingRepository"]; exists {
		return nil, storedErr
	}
	return c.settingRepository, nil
}

// BeneficiaryRepository returns the beneficiary repository for the configured driver.
func (c *Container) BeneficiaryRepository() (nationalidUseCase.BeneficiaryRepository, error) {
	var err error
	c.beneficiaryRepositoryInit.Do(func() {
		c.beneficiaryRepository, err = c.initBeneficiaryRepository()
		if err != nil {
			c.initErrors["beneficiaryRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["beneficiaryRepository"]; exists {
		return nil, storedErr
	}
	return c.beneficiaryRepository, nil
}

// DependentRepository returns the dependent repository for the configured driver.
func (c *Container) DependentRepository() (nationalidUseCase.DependentRepository, error) {
	var err error
	c.dependentRepositoryInit.Do(func() {
		c.dependentRepository, err = c.initDependentRepository()
		if err != nil {
			c.initErrors["dependentRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dependentRepository"]; exists {
		return nil, storedErr
	}
	return c.dependentRepository, nil
}

// AuditLogRepository returns the audit log repository for the configured driver.
func (c *Container) AuditLogRepository() (nationalidUseCase.AuditLogRepository, error) {
	var err error
	c.auditLogRepositoryInit.Do(func() {
		c.auditLogRepository, err = c.initAuditLogRepository()
		if err != nil {
			c.initErrors["auditLogRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogRepository"]; exists {
		return nil, storedErr
	}
	return c.auditLogRepository, nil
}

// SigningKey returns the decoded audit signing key, or nil when signing is disabled.
// A KMS wrapped key is decrypted once on first access.
func (c *Container) SigningKey() ([]byte, error) {
	var err error
	c.signingKeyInit.Do(func() {
		c.signingKey, err = c.initSigningKey()
		if err != nil {
			c.initErrors["signingKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["signingKey"]; exists {
		return nil, storedErr
	}
	return c.signingKey, nil
}

// AuditLogUseCase returns the persisted audit trail use case.
func (c *Container) AuditLogUseCase() (nationalidUseCase.AuditLogUseCase, error) {
	var err error
	c.auditLogUseCaseInit.Do(func() {
		c.auditLogUseCase, err = c.initAuditLogUseCase()
		if err != nil {
			c.initErrors["auditLogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditLogUseCase, nil
}

// AuditLogger returns the audit logger. Entries are persisted when AUDIT_LOG_PERSIST_ENABLED is set.
func (c *Container) AuditLogger() (nationalidService.AuditLogger, error) {
	var err error
	c.auditLoggerInit.Do(func() {
		c.auditLogger, err = c.initAuditLogger()
		if err != nil {
			c.initErrors["auditLogger"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogger"]; exists {
		return nil, storedErr
	}
	return c.auditLogger, nil
}

// AccessGuard returns the identifier access guard.
func (c *Container) AccessGuard() (nationalidUseCase.AccessGuard, error) {
	var err error
	c.accessGuardInit.Do(func() {
		c.accessGuard, err = c.initAccessGuard()
		if err != nil {
			c.initErrors["accessGuard"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accessGuard"]; exists {
		return nil, storedErr
	}
	return c.accessGuard, nil
}

// Hasher returns the identifier hasher.
func (c *Container) Hasher() (nationalidService.Hasher, error) {
	var err error
	c.hasherInit.Do(func() {
		c.hasher, err = c.initHasher()
		if err != nil {
			c.initErrors["hasher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["hasher"]; exists {
		return nil, storedErr
	}
	return c.hasher, nil
}

// BeneficiaryUseCase returns the beneficiary use case.
func (c *Container) BeneficiaryUseCase() (nationalidUseCase.BeneficiaryUseCase, error) {
	var err error
	c.beneficiaryUseCaseInit.Do(func() {
		c.beneficiaryUseCase, err = c.initBeneficiaryUseCase()
		if err != nil {
			c.initErrors["beneficiaryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["beneficiaryUseCase"]; exists {
		return nil, storedErr
	}
	return c.beneficiaryUseCase, nil
}

// DependentUseCase returns the dependent use case.
func (c *Container) DependentUseCase() (nationalidUseCase.DependentUseCase, error) {
	var err error
	c.dependentUseCaseInit.Do(func() {
		c.dependentUseCase, err = c.initDependentUseCase()
		if err != nil {
			c.initErrors["dependentUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dependentUseCase"]; exists {
		return nil, storedErr
	}
	return c.dependentUseCase, nil
}

// MigrationUseCase returns the legacy identifier migration use case.
func (c *Container) MigrationUseCase() (nationalidUseCase.MigrationUseCase, error) {
	var err error
	c.migrationUseCaseInit.Do(func() {
		c.migrationUseCase, err = c.initMigrationUseCase()
		if err != nil {
			c.initErrors["migrationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["migrationUseCase"]; exists {
		return nil, storedErr
	}
	return c.migrationUseCase, nil
}

// SaltUseCase returns the salt provisioning use case.
func (c *Container) SaltUseCase() (nationalidUseCase.SaltUseCase, error) {
	var err error
	c.saltUseCaseInit.Do(func() {
		c.saltUseCase, err = c.initSaltUseCase()
		if err != nil {
			c.initErrors["saltUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["saltUseCase"]; exists {
		return nil, storedErr
	}
	return c.saltUseCase, nil
}

// BeneficiaryHandler returns the beneficiary HTTP handler.
func (c *Container) BeneficiaryHandler() (*nationalidHTTP.BeneficiaryHandler, error) {
	var err error
	c.beneficiaryHandlerInit.Do(func() {
		c.beneficiaryHandler, err = c.initBeneficiaryHandler()
		if err != nil {
			c.initErrors["beneficiaryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["beneficiaryHandler"]; exists {
		return nil, storedErr
	}
	return c.beneficiaryHandler, nil
}

// DependentHandler returns the dependent HTTP handler.
func (c *Container) DependentHandler() (*nationalidHTTP.DependentHandler, error) {
	var err error
	c.dependentHandlerInit.Do(func() {
		c.dependentHandler, err = c.initDependentHandler()
		if err != nil {
			c.initErrors["dependentHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dependentHandler"]; exists {
		return nil, storedErr
	}
	return c.dependentHandler, nil
}

// AuditLogHandler returns the audit log HTTP handler.
func (c *Container) AuditLogHandler() (*nationalidHTTP.AuditLogHandler, error) {
	var err error
	c.auditLogHandlerInit.Do(func() {
		c.auditLogHandler, err = c.initAuditLogHandler()
		if err != nil {
			c.initErrors["auditLogHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogHandler"]; exists {
		return nil, storedErr
	}
	return c.auditLogHandler, nil
}

// LegacyHandler returns the legacy status HTTP handler.
func (c *Container) LegacyHandler() (*nationalidHTTP.LegacyHandler, error) {
	var err error
	c.legacyHandlerInit.Do(func() {
		c.legacyHandler, err = c.initLegacyHandler()
		if err != nil {
			c.initErrors["legacyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["legacyHandler"]; exists {
		return nil, storedErr
	}
	return c.legacyHandler, nil
}

func (c *Container) initSettingRepository() (nationalidUseCase.SettingRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for setting repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return nationalidRepository.NewPostgreSQLSettingRepository(db), nil
	case "mysql":
		return nationalidRepository.NewMySQLSettingRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initBeneficiaryRepository() (nationalidUseCase.BeneficiaryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for beneficiary repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return nationalidRepository.NewPostgreSQLBeneficiaryRepository(db), nil
	case "mysql":
		return nationalidRepository.NewMySQLBeneficiaryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initDependentRepository() (nationalidUseCase.DependentRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for dependent repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return nationalidRepository.NewPostgreSQLDependentRepository(db), nil
	case "mysql":
		return nationalidRepository.NewMySQLDependentRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAuditLogRepository() (nationalidUseCase.AuditLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for audit log repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return nationalidRepository.NewPostgreSQLAuditLogRepository(db), nil
	case "mysql":
		return nationalidRepository.NewMySQLAuditLogRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initSigningKey() ([]byte, error) {
	if c.config.AuditSigningKey == "" {
		return nil, nil
	}

	key, err := nationalidService.DecodeSigningKey(
		context.Background(),
		nationalidService.NewKMSService(),
		c.config.KMSKeyURI,
		c.config.AuditSigningKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit signing key: %w", err)
	}
	return key, nil
}

func (c *Container) initAuditLogUseCase() (nationalidUseCase.AuditLogUseCase, error) {
	auditLogRepository, err := c.AuditLogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log repository for audit log use case: %w", err)
	}

	signingKey, err := c.SigningKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get signing key for audit log use case: %w", err)
	}

	return nationalidUseCase.NewAuditLogUseCase(auditLogRepository, nationalidService.NewAuditSigner(), signingKey), nil
}

func (c *Container) initAuditLogger() (nationalidService.AuditLogger, error) {
	var recorder nationalidService.AuditRecorder
	if c.config.AuditLogPersistEnabled {
		auditLogUseCase, err := c.AuditLogUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get audit log use case for audit logger: %w", err)
		}
		recorder = auditLogUseCase
	}

	return nationalidService.NewAuditLogger(c.Logger(), recorder), nil
}

func (c *Container) initAccessGuard() (nationalidUseCase.AccessGuard, error) {
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for access guard: %w", err)
	}

	resolver := nationalidUseCase.NewSessionResolver(userRepository)
	return nationalidUseCase.NewAccessGuard(resolver, c.Logger()), nil
}

func (c *Container) initHasher() (nationalidService.Hasher, error) {
	settingRepository, err := c.SettingRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting repository for hasher: %w", err)
	}

	saltProvider := nationalidService.NewSaltProvider(settingRepository, c.config.TCHashSaltFallback, c.Logger())
	return nationalidService.NewHasher(saltProvider), nil
}

func (c *Container) initBeneficiaryUseCase() (nationalidUseCase.BeneficiaryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for beneficiary use case: %w", err)
	}

	beneficiaryRepository, err := c.BeneficiaryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiary repository for beneficiary use case: %w", err)
	}

	accessGuard, err := c.AccessGuard()
	if err != nil {
		return nil, fmt.Errorf("failed to get access guard for beneficiary use case: %w", err)
	}

	hasher, err := c.Hasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get hasher for beneficiary use case: %w", err)
	}

	auditLogger, err := c.AuditLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logger for beneficiary use case: %w", err)
	}

	baseUseCase := nationalidUseCase.NewBeneficiaryUseCase(
		txManager,
		beneficiaryRepository,
		accessGuard,
		hasher,
		auditLogger,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for beneficiary use case: %w", err)
		}
		return nationalidUseCase.NewBeneficiaryUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initDependentUseCase() (nationalidUseCase.DependentUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for dependent use case: %w", err)
	}

	dependentRepository, err := c.DependentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get dependent repository for dependent use case: %w", err)
	}

	beneficiaryRepository, err := c.BeneficiaryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiary repository for dependent use case: %w", err)
	}

	accessGuard, err := c.AccessGuard()
	if err != nil {
		return nil, fmt.Errorf("failed to get access guard for dependent use case: %w", err)
	}

	hasher, err := c.Hasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get hasher for dependent use case: %w", err)
	}

	auditLogger, err := c.AuditLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logger for dependent use case: %w", err)
	}

	baseUseCase := nationalidUseCase.NewDependentUseCase(
		txManager,
		dependentRepository,
		beneficiaryRepository,
		accessGuard,
		hasher,
		auditLogger,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for dependent use case: %w", err)
		}
		return nationalidUseCase.NewDependentUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initMigrationUseCase() (nationalidUseCase.MigrationUseCase, error) {
	beneficiaryRepository, err := c.BeneficiaryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiary repository for migration use case: %w", err)
	}

	dependentRepository, err := c.DependentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get dependent repository for migration use case: %w", err)
	}

	accessGuard, err := c.AccessGuard()
	if err != nil {
		return nil, fmt.Errorf("failed to get access guard for migration use case: %w", err)
	}

	hasher, err := c.Hasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get hasher for migration use case: %w", err)
	}

	auditLogger, err := c.AuditLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logger for migration use case: %w", err)
	}

	baseUseCase := nationalidUseCase.NewMigrationUseCase(
		beneficiaryRepository,
		dependentRepository,
		accessGuard,
		hasher,
		auditLogger,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for migration use case: %w", err)
		}
		return nationalidUseCase.NewMigrationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initSaltUseCase() (nationalidUseCase.SaltUseCase, error) {
	settingRepository, err := c.SettingRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting repository for salt use case: %w", err)
	}
	return nationalidUseCase.NewSaltUseCase(settingRepository, nationalidService.NewSaltGenerator()), nil
}

func (c *Container) initBeneficiaryHandler() (*nationalidHTTP.BeneficiaryHandler, error) {
	beneficiaryUseCase, err := c.BeneficiaryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiary use case for beneficiary handler: %w", err)
	}
	return nationalidHTTP.NewBeneficiaryHandler(beneficiaryUseCase, c.Logger()), nil
}

func (c *Container) initDependentHandler() (*nationalidHTTP.DependentHandler, error) {
	dependentUseCase, err := c.DependentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get dependent use case for dependent handler: %w", err)
	}
	return nationalidHTTP.NewDependentHandler(dependentUseCase, c.Logger()), nil
}

func (c *Container) initAuditLogHandler() (*nationalidHTTP.AuditLogHandler, error) {
	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for audit log handler: %w", err)
	}
	return nationalidHTTP.NewAuditLogHandler(auditLogUseCase, c.Logger()), nil
}

func (c *Container) initLegacyHandler() (*nationalidHTTP.LegacyHandler, error) {
	migrationUseCase, err := c.MigrationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get migration use case for legacy handler: %w", err)
	}
	return nationalidHTTP.NewLegacyHandler(migrationUseCase, c.Logger()), nil
}
