package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/pkg/psqlbuilder"
	"github.com/rakshdevstudio/JCB/pkg/txmanager"
)

// Repository репозиторий справочных данных: города, салоны, услуги, мастера.
// Данные меняются редко, выборки кэшируются на уровне service/catalog.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCities получает активные города вместе с количеством активных салонов.
// salon_count — вычисляемое поле для витрины, в таблице не хранится.
func (r *Repository) ListCities(ctx context.Context) ([]*domain.City, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.name",
		"c.state",
		"c.country",
		"c.is_active",
		"COUNT(s.id) AS salon_count",
	).
		From("cities c").
		LeftJoin("salons s ON s.city_id = c.id AND s.is_active = TRUE").
		Where(squirrel.Eq{"c.is_active": true}).
		GroupBy("c.id", "c.name", "c.state", "c.country", "c.is_active").
		OrderBy("c.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cities := make([]*domain.City, 0)
	for rows.Next() {
		var city domain.City
		err := rows.Scan(
			&city.ID,
			&city.Name,
			&city.State,
			&city.Country,
			&city.IsActive,
			&city.SalonCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCities - scan row: %v", ErrScanRow, err)
		}
		cities = append(cities, &city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCities - rows error: %v", ErrScanRow, err)
	}

	return cities, nil
}

// GetCityByID получает город по ID
func (r *Repository) GetCityByID(ctx context.Context, id string) (*domain.City, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "state", "country", "is_active").
		From("cities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCityByID - build select query: %v", ErrBuildQuery, err)
	}

	var city domain.City
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&city.ID,
		&city.Name,
		&city.State,
		&city.Country,
		&city.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCityByID - scan city: %v", ErrScanRow, err)
	}

	return &city, nil
}

// ListSalonsByCity получает активные салоны города
func (r *Repository) ListSalonsByCity(ctx context.Context, cityID string) ([]*domain.Salon, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectSalons().
		Where(squirrel.Eq{"city_id": cityID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("rating DESC NULLS LAST, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSalonsByCity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSalonsByCity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salons := make([]*domain.Salon, 0)
	for rows.Next() {
		salon, err := scanSalon(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSalonsByCity - scan row: %v", ErrScanRow, err)
		}
		salons = append(salons, salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSalonsByCity - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}

// GetSalonByID получает салон по ID
func (r *Repository) GetSalonByID(ctx context.Context, id string) (*domain.Salon, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectSalons().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonByID - build select query: %v", ErrBuildQuery, err)
	}

	salon, err := scanSalon(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonByID - scan salon: %v", ErrScanRow, err)
	}

	return salon, nil
}

// ListServiceCategories получает активные категории услуг в порядке отображения
func (r *Repository) ListServiceCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "icon", "display_order", "is_active").
		From("service_categories").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("display_order ASC NULLS LAST, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.ServiceCategory, 0)
	for rows.Next() {
		var category domain.ServiceCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Icon,
			&category.DisplayOrder,
			&category.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServiceCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServiceCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ListServices получает активные услуги, опционально по категории
func (r *Repository) ListServices(ctx context.Context, categoryID *string) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := selectServices().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC")

	if categoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *categoryID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectServices().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// ListStaffBySalon получает активных мастеров салона
func (r *Repository) ListStaffBySalon(ctx context.Context, salonID string) ([]*domain.Staff, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectStaff().
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("rating DESC NULLS LAST, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]*domain.Staff, 0)
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStaffBySalon - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffBySalon - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// GetStaffByID получает мастера по ID
func (r *Repository) GetStaffByID(ctx context.Context, id string) (*domain.Staff, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectStaff().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - build select query: %v", ErrBuildQuery, err)
	}

	member, err := scanStaff(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - scan staff: %v", ErrScanRow, err)
	}

	return member, nil
}

func selectSalons() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"city_id",
		"name",
		"area",
		"address",
		"phone",
		"email",
		"rating",
		"review_count",
		"image_url",
		"open_time",
		"close_time",
		"is_active",
	).From("salons")
}

func selectServices() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"category_id",
		"name",
		"description",
		"duration_minutes",
		"base_price",
		"is_active",
	).From("services")
}

func selectStaff() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"role",
		"specialties",
		"rating",
		"review_count",
		"image_url",
		"experience",
		"is_active",
	).From("staff")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSalon(row rowScanner) (*domain.Salon, error) {
	var salon domain.Salon
	err := row.Scan(
		&salon.ID,
		&salon.CityID,
		&salon.Name,
		&salon.Area,
		&salon.Address,
		&salon.Phone,
		&salon.Email,
		&salon.Rating,
		&salon.ReviewCount,
		&salon.ImageURL,
		&salon.OpenTime,
		&salon.CloseTime,
		&salon.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	err := row.Scan(
		&service.ID,
		&service.CategoryID,
		&service.Name,
		&service.Description,
		&service.DurationMinutes,
		&service.BasePrice,
		&service.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func scanStaff(row rowScanner) (*domain.Staff, error) {
	var member domain.Staff
	err := row.Scan(
		&member.ID,
		&member.SalonID,
		&member.Name,
		&member.Role,
		pq.Array(&member.Specialties),
		&member.Rating,
		&member.ReviewCount,
		&member.ImageURL,
		&member.Experience,
		&member.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}
