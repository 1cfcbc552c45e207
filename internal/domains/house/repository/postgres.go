package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cozyhomes-backend/internal/domains/house/model"
)

const houseColumns = `id, user_id, title, description, image, country, county,
		COALESCE(city, '') AS city,
		location_description, gym, spa, bar, parking, swimming_pool,
		created_at, updated_at`

// postgresRepository implements house.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new house repository instance
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new house row. The id is generated here; the owner
// comes in on the entity already stamped by the service from the session.
func (r *postgresRepository) Create(ctx context.Context, house *model.House) (*model.House, error) {
	house.ID = uuid.New()

	query := `
    INSERT INTO houses (id, user_id, title, description, image, country, county,
                        city, location_description, gym, spa, bar, parking, swimming_pool)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    RETURNING created_at, updated_at
  `
	args := []interface{}{
		house.ID, house.UserID, house.Title, house.Description, house.Image,
		house.Country, house.County, house.City, house.LocationDescription,
		house.Gym, house.Spa, house.Bar, house.Parking, house.SwimmingPool,
	}

	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&house.CreatedAt, &house.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create house: %w", err)
	}

	return house, nil
}

// GetByID retrieves a house by ID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.House, error) {
	query := `SELECT ` + houseColumns + ` FROM houses WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	house, err := scanHouse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrHouseNotFound
		}
		return nil, fmt.Errorf("failed to get house by id: %w", err)
	}

	return house, nil
}

// GetWithRooms retrieves a house and its rooms for the detail view.
func (r *postgresRepository) GetWithRooms(ctx context.Context, id uuid.UUID) (*model.HouseWithRooms, error) {
	house, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
    SELECT id, house_id, title, COALESCE(description, '') AS description,
           bed_count, price_per_night
    FROM rooms
    WHERE house_id = $1
    ORDER BY created_at
  `
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	rooms := []model.Room{}
	for rows.Next() {
		var room model.Room
		err := rows.Scan(
			&room.ID,
			&room.HouseID,
			&room.Title,
			&room.Description,
			&room.BedCount,
			&room.PricePerNight,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return &model.HouseWithRooms{House: *house, Rooms: rooms}, nil
}

// Update writes only the fields present in req. The SET clause is built
// from the non-nil pointers; user_id is never in it.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.House, error) {
	sets := []string{}
	args := []interface{}{}
	i := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Image != nil {
		add("image", *req.Image)
	}
	if req.Country != nil {
		add("country", *req.Country)
	}
	if req.County != nil {
		add("county", *req.County)
	}
	if req.City != nil {
		add("city", *req.City)
	}
	if req.LocationDescription != nil {
		add("location_description", *req.LocationDescription)
	}
	if req.Gym != nil {
		add("gym", *req.Gym)
	}
	if req.Spa != nil {
		add("spa", *req.Spa)
	}
	if req.Bar != nil {
		add("bar", *req.Bar)
	}
	if req.Parking != nil {
		add("parking", *req.Parking)
	}
	if req.SwimmingPool != nil {
		add("swimming_pool", *req.SwimmingPool)
	}

	if len(sets) == 0 {
		return nil, model.ErrEmptyUpdate
	}

	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
    UPDATE houses
    SET %s
    WHERE id = $%d
    RETURNING `+houseColumns,
		strings.Join(sets, ", "), i)
	args = append(args, id)

	row := r.pool.QueryRow(ctx, query, args...)

	house, err := scanHouse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrHouseNotFound
		}
		return nil, fmt.Errorf("failed to update house: %w", err)
	}

	return house, nil
}

// ListByOwner returns all houses owned by the given actor, newest first.
func (r *postgresRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.House, error) {
	query := `SELECT ` + houseColumns + ` FROM houses WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	defer rows.Close()

	houses := []model.House{}
	for rows.Next() {
		house, err := scanHouse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan house row: %w", err)
		}
		houses = append(houses, *house)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating house rows: %w", err)
	}

	return houses, nil
}

// ImageKeyInUse checks whether any stored image URL ends in /<key>.
func (r *postgresRepository) ImageKeyInUse(ctx context.Context, key string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM houses WHERE image LIKE '%/' || $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check image usage: %w", err)
	}
	return exists, nil
}

// scanHouse reads one house row in houseColumns order.
func scanHouse(row pgx.Row) (*model.House, error) {
	var house model.House
	err := row.Scan(
		&house.ID,
		&house.UserID,
		&house.Title,
		&house.Description,
		&house.Image,
		&house.Country,
		&house.County,
		&house.City,
		&house.LocationDescription,
		&house.Gym,
		&house.Spa,
		&house.Bar,
		&house.Parking,
		&house.SwimmingPool,
		&house.CreatedAt,
		&house.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &house, nil
}
