package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/apperror"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

type postgresRoomRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresRoomRepo(db *pgxpool.Pool, logger logger.Logger) room.Repository {
	return &postgresRoomRepo{db: db, logger: logger}
}

var psqlRoom = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const roomColumns = `
	r.id, r.property_id, r.room_code, r.room_name, r.status,
	r.rental_price, r.electricity_fee, r.water_fee, r.service_fee, r.parking_fee,
	r.photo_urls, r.created_at, r.updated_at,
	t.id, t.full_name, t.phone
`

func scanRoom(row pgx.Row) (*room.Room, error) {
	r := &room.Room{}
	var tenantID *uuid.UUID
	var tenantName, tenantPhone *string

	err := row.Scan(
		&r.ID, &r.PropertyID, &r.RoomCode, &r.RoomName, &r.Status,
		&r.RentalPrice, &r.ElectricityFee, &r.WaterFee, &r.ServiceFee, &r.ParkingFee,
		&r.PhotoURLs, &r.CreatedAt, &r.UpdatedAt,
		&tenantID, &tenantName, &tenantPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, room.ErrRoomNotFound
		}
		return nil, apperror.NewInternal("failed to scan room row", err)
	}

	if tenantID != nil {
		summary := &room.TenantSummary{ID: *tenantID}
		if tenantName != nil {
			summary.FullName = *tenantName
		}
		if tenantPhone != nil {
			summary.Phone = *tenantPhone
		}
		r.Tenant = summary
	}
	return r, nil
}

func scanRooms(rows pgx.Rows) ([]*room.Room, error) {
	defer rows.Close()
	rooms := make([]*room.Room, 0)
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating room rows", err)
	}
	return rooms, nil
}

func (r *postgresRoomRepo) Save(ctx context.Context, rm *room.Room) error {
	query := `
		INSERT INTO rooms (id, property_id, room_code, room_name, status,
			rental_price, electricity_fee, water_fee, service_fee, parking_fee,
			photo_urls, tenant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	var tenantID *uuid.UUID
	if rm.Tenant != nil {
		tenantID = &rm.Tenant.ID
	}
	_, err := r.db.Exec(ctx, query,
		rm.ID, rm.PropertyID, rm.RoomCode, rm.RoomName, rm.Status,
		rm.RentalPrice, rm.ElectricityFee, rm.WaterFee, rm.ServiceFee, rm.ParkingFee,
		rm.PhotoURLs, tenantID, rm.CreatedAt, rm.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save room", err)
	}
	return nil
}

func (r *postgresRoomRepo) Update(ctx context.Context, rm *room.Room) error {
	query := `
		UPDATE rooms SET
			room_code = $2, room_name = $3, status = $4,
			rental_price = $5, electricity_fee = $6, water_fee = $7,
			service_fee = $8, parking_fee = $9, photo_urls = $10,
			tenant_id = $11, updated_at = NOW()
		WHERE id = $1
	`
	var tenantID *uuid.UUID
	if rm.Tenant != nil {
		tenantID = &rm.Tenant.ID
	}
	cmdTag, err := r.db.Exec(ctx, query,
		rm.ID, rm.RoomCode, rm.RoomName, rm.Status,
		rm.RentalPrice, rm.ElectricityFee, rm.WaterFee,
		rm.ServiceFee, rm.ParkingFee, rm.PhotoURLs, tenantID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update room", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("room", rm.ID.String())
	}
	return nil
}

func (r *postgresRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete room", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("room", id.String())
	}
	return nil
}

func (r *postgresRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		LEFT JOIN tenants t ON t.id = r.tenant_id
		WHERE r.id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	return scanRoom(row)
}

func (r *postgresRoomRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*room.Room, error) {
	builder := psqlRoom.Select(roomColumns).
		From("rooms r").
		LeftJoin("tenants t ON t.id = r.tenant_id").
		Where(sq.Eq{"r.property_id": propertyID}).
		OrderBy("r.room_code ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list rooms by property query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list rooms by property", err)
	}
	return scanRooms(rows)
}

func (r *postgresRoomRepo) ListAll(ctx context.Context) ([]room.Room, error) {
	builder := psqlRoom.Select(roomColumns).
		From("rooms r").
		LeftJoin("tenants t ON t.id = r.tenant_id").
		OrderBy("r.room_code ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list all rooms query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list all rooms", err)
	}
	ptrs, err := scanRooms(rows)
	if err != nil {
		return nil, err
	}

	rooms := make([]room.Room, len(ptrs))
	for i, p := range ptrs {
		rooms[i] = *p
	}
	return rooms, nil
}
