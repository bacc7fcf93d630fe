package offer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/pkg/psqlbuilder"
	"github.com/rakshdevstudio/JCB/pkg/txmanager"
)

// Таблицы ограничений акции: пустой набор строк означает "действует везде"
// по соответствующему измерению, а не "нигде".
var restrictionTables = []struct {
	table  string
	column string
}{
	{"offer_services", "service_id"},
	{"offer_salons", "salon_id"},
	{"offer_cities", "city_id"},
}

// Repository репозиторий для работы с акциями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория акций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает акцию вместе с наборами ограничений.
// Должен вызываться внутри транзакции: акция и её ограничения
// либо записываются целиком, либо не записываются вовсе.
func (r *Repository) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("offers").
		Columns(
			"title",
			"description",
			"banner_image_url",
			"start_date",
			"end_date",
			"discount_type",
			"discount_value",
			"is_featured",
			"is_active",
		).
		Values(
			offer.Title,
			offer.Description,
			offer.BannerImageURL,
			offer.StartDate,
			offer.EndDate,
			offer.DiscountType,
			offer.DiscountValue,
			offer.IsFeatured,
			offer.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&offer.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	offer.CreatedAt = createdAt.Time
	offer.UpdatedAt = updatedAt.Time

	if err := r.insertRestrictions(ctx, executor, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

// GetByID получает акцию по ID вместе с её ограничениями
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectOffers().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	offer, err := scanOffer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offer: %v", ErrScanRow, err)
	}

	if err := r.loadRestrictions(ctx, executor, []*domain.Offer{offer}); err != nil {
		return nil, err
	}

	return offer, nil
}

// ListActive получает все активные акции с ограничениями,
// отсортированные: сначала featured, затем по дате создания (новые выше).
// Фильтрация по периоду действия и применимости выполняется выше,
// на уровне сервиса — ему нужны и акции, которые начнутся позже.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Offer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectOffers().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("is_featured DESC", "created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offers, err := scanOffers(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadRestrictions(ctx, executor, offers); err != nil {
		return nil, err
	}

	return offers, nil
}

// Update обновляет акцию и полностью заменяет наборы ограничений.
// Должен вызываться внутри транзакции.
func (r *Repository) Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("offers").
		Set("title", offer.Title).
		Set("description", offer.Description).
		Set("banner_image_url", offer.BannerImageURL).
		Set("start_date", offer.StartDate).
		Set("end_date", offer.EndDate).
		Set("discount_type", offer.DiscountType).
		Set("discount_value", offer.DiscountValue).
		Set("is_featured", offer.IsFeatured).
		Set("is_active", offer.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": offer.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	offer.CreatedAt = createdAt.Time
	offer.UpdatedAt = updatedAt.Time

	// Замена ограничений: старые наборы удаляются целиком,
	// новые вставляются заново
	if err := r.deleteRestrictions(ctx, executor, offer.ID); err != nil {
		return nil, err
	}
	if err := r.insertRestrictions(ctx, executor, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

// Delete удаляет акцию. Строки ограничений удаляются каскадом по FK.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOfferNotFound
	}

	return nil
}

func (r *Repository) insertRestrictions(ctx context.Context, executor DBExecutor, offer *domain.Offer) error {
	sets := [][]string{offer.ServiceIDs, offer.SalonIDs, offer.CityIDs}

	for i, rt := range restrictionTables {
		ids := sets[i]
		if len(ids) == 0 {
			continue
		}

		insertBuilder := psqlbuilder.Insert(rt.table).Columns("offer_id", rt.column)
		for _, id := range ids {
			insertBuilder = insertBuilder.Values(offer.ID, id)
		}

		query, args, err := insertBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: insertRestrictions - build insert for %s: %v", ErrBuildQuery, rt.table, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insertRestrictions - execute insert for %s: %v", ErrExecQuery, rt.table, err)
		}
	}

	return nil
}

func (r *Repository) deleteRestrictions(ctx context.Context, executor DBExecutor, offerID string) error {
	for _, rt := range restrictionTables {
		query, args, err := psqlbuilder.Delete(rt.table).
			Where(squirrel.Eq{"offer_id": offerID}).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: deleteRestrictions - build delete for %s: %v", ErrBuildQuery, rt.table, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: deleteRestrictions - execute delete for %s: %v", ErrExecQuery, rt.table, err)
		}
	}

	return nil
}

// loadRestrictions подгружает наборы ограничений для всех переданных акций
func (r *Repository) loadRestrictions(ctx context.Context, executor DBExecutor, offers []*domain.Offer) error {
	if len(offers) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Offer, len(offers))
	offerIDs := make([]string, 0, len(offers))
	for _, o := range offers {
		byID[o.ID] = o
		offerIDs = append(offerIDs, o.ID)
	}

	for i, rt := range restrictionTables {
		query, args, err := psqlbuilder.Select("offer_id", rt.column).
			From(rt.table).
			Where(squirrel.Eq{"offer_id": offerIDs}).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: loadRestrictions - build select for %s: %v", ErrBuildQuery, rt.table, err)
		}

		rows, err := executor.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: loadRestrictions - execute select for %s: %v", ErrExecQuery, rt.table, err)
		}

		for rows.Next() {
			var offerID, refID string
			if err := rows.Scan(&offerID, &refID); err != nil {
				rows.Close()
				return fmt.Errorf("%w: loadRestrictions - scan row from %s: %v", ErrScanRow, rt.table, err)
			}

			offer, ok := byID[offerID]
			if !ok {
				continue
			}
			switch i {
			case 0:
				offer.ServiceIDs = append(offer.ServiceIDs, refID)
			case 1:
				offer.SalonIDs = append(offer.SalonIDs, refID)
			case 2:
				offer.CityIDs = append(offer.CityIDs, refID)
			}
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("%w: loadRestrictions - rows error from %s: %v", ErrScanRow, rt.table, err)
		}
		rows.Close()
	}

	return nil
}

func selectOffers() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"title",
		"description",
		"banner_image_url",
		"start_date",
		"end_date",
		"discount_type",
		"discount_value",
		"is_featured",
		"is_active",
		"created_at",
		"updated_at",
	).From("offers")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOffer(row rowScanner) (*domain.Offer, error) {
	var offer domain.Offer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&offer.ID,
		&offer.Title,
		&offer.Description,
		&offer.BannerImageURL,
		&offer.StartDate,
		&offer.EndDate,
		&offer.DiscountType,
		&offer.DiscountValue,
		&offer.IsFeatured,
		&offer.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	offer.CreatedAt = createdAt.Time
	offer.UpdatedAt = updatedAt.Time

	return &offer, nil
}

func scanOffers(rows *sql.Rows) ([]*domain.Offer, error) {
	offers := make([]*domain.Offer, 0)

	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOffers - scan row: %v", ErrScanRow, err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOffers - rows error: %v", ErrScanRow, err)
	}

	return offers, nil
}
