package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

type RoomRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	roomRepo    room.Repository
	propertyID  uuid.UUID
	tenantID    uuid.UUID
}

func (s *RoomRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.roomRepo = NewPostgresRoomRepo(s.dbPool, logger.NewNop())

	ownerID := uuid.New()
	_, err = s.dbPool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash) VALUES ($1, $2, $3, $4)`,
		ownerID, "landlord@example.com", "Landlord", "hashedpassword")
	if err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}

	s.propertyID = uuid.New()
	_, err = s.dbPool.Exec(ctx,
		`INSERT INTO properties (id, owner_id, name, address) VALUES ($1, $2, $3, $4)`,
		s.propertyID, ownerID, "Green House", "12 Nguyen Trai")
	if err != nil {
		s.T().Fatalf("Failed to seed property: %s", err)
	}

	s.tenantID = uuid.New()
	_, err = s.dbPool.Exec(ctx,
		`INSERT INTO tenants (id, full_name, phone) VALUES ($1, $2, $3)`,
		s.tenantID, "Tran Van An", "0901234567")
	if err != nil {
		s.T().Fatalf("Failed to seed tenant: %s", err)
	}
}

func (s *RoomRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRoomRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RoomRepoIntegrationTestSuite))
}

func (s *RoomRepoIntegrationTestSuite) newRoom(code, name string) *room.Room {
	now := time.Now().UTC()
	return &room.Room{
		ID:          uuid.New(),
		PropertyID:  s.propertyID,
		RoomCode:    code,
		RoomName:    name,
		Status:      room.StatusVacant,
		RentalPrice: 3000000,
		PhotoURLs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *RoomRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	newRoom := s.newRoom("A101", "Phong goc view ho")
	s.NoError(s.roomRepo.Save(ctx, newRoom))

	found, err := s.roomRepo.FindByID(ctx, newRoom.ID)

	s.NoError(err)
	s.NotNil(found)
	s.Equal(newRoom.RoomCode, found.RoomCode)
	s.Equal(newRoom.RoomName, found.RoomName)
	s.Equal(room.StatusVacant, found.Status)
	s.Nil(found.Tenant)
}

func (s *RoomRepoIntegrationTestSuite) Test_FindByID_NotFound() {
	_, err := s.roomRepo.FindByID(context.Background(), uuid.New())
	s.ErrorIs(err, room.ErrRoomNotFound)
}

func (s *RoomRepoIntegrationTestSuite) Test_Update_AssignsTenant() {
	ctx := context.Background()

	r := s.newRoom("B202", "Phong tang hai")
	s.NoError(s.roomRepo.Save(ctx, r))

	r.Status = room.StatusOccupied
	r.Tenant = &room.TenantSummary{ID: s.tenantID}
	s.NoError(s.roomRepo.Update(ctx, r))

	found, err := s.roomRepo.FindByID(ctx, r.ID)

	s.NoError(err)
	s.Equal(room.StatusOccupied, found.Status)
	s.NotNil(found.Tenant)
	s.Equal("Tran Van An", found.Tenant.FullName)
	s.Equal("0901234567", found.Tenant.Phone)
}

func (s *RoomRepoIntegrationTestSuite) Test_ListAll_OrdersByRoomCode() {
	ctx := context.Background()

	s.NoError(s.roomRepo.Save(ctx, s.newRoom("D402", "")))
	s.NoError(s.roomRepo.Save(ctx, s.newRoom("C301", "")))

	rooms, err := s.roomRepo.ListAll(ctx)

	s.NoError(err)
	s.GreaterOrEqual(len(rooms), 2)
	for i := 1; i < len(rooms); i++ {
		s.LessOrEqual(rooms[i-1].RoomCode, rooms[i].RoomCode)
	}
}

func (s *RoomRepoIntegrationTestSuite) Test_Delete() {
	ctx := context.Background()

	r := s.newRoom("E501", "")
	s.NoError(s.roomRepo.Save(ctx, r))
	s.NoError(s.roomRepo.Delete(ctx, r.ID))

	_, err := s.roomRepo.FindByID(ctx, r.ID)
	s.ErrorIs(err, room.ErrRoomNotFound)
}
