package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trybe_hotel/internal/domain"
)

var hotelCols = []string{"id", "name", "address", "city_id", "name"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRepo_Cities(t *testing.T) {
	db, mock := newMock(t)
	repo := &Repo{q: db}
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		mock.ExpectExec(insertCitySQL).WithArgs("Rio de Janeiro").
			WillReturnResult(sqlmock.NewResult(3, 1))

		c, err := repo.CreateCity(ctx, "Rio de Janeiro")
		require.NoError(t, err)
		assert.Equal(t, domain.City{ID: 3, Name: "Rio de Janeiro"}, c)
	})

	t.Run("list in id order", func(t *testing.T) {
		mock.ExpectQuery(listCitiesSQL).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Manaus").AddRow(2, "Palmas"))

		cs, err := repo.ListCities(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.City{{ID: 1, Name: "Manaus"}, {ID: 2, Name: "Palmas"}}, cs)
	})

	t.Run("list empty is not nil", func(t *testing.T) {
		mock.ExpectQuery(listCitiesSQL).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		cs, err := repo.ListCities(ctx)
		require.NoError(t, err)
		assert.NotNil(t, cs)
		assert.Empty(t, cs)
	})

	t.Run("get missing", func(t *testing.T) {
		mock.ExpectQuery(getCitySQL).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetCity(ctx, 9)
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "city", nf.Entity)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_CreateHotel(t *testing.T) {
	db, mock := newMock(t)
	repo := &Repo{q: db}
	ctx := context.Background()

	t.Run("resolves city after insert", func(t *testing.T) {
		mock.ExpectExec(insertHotelSQL).WithArgs("Trybe Hotel São Paulo", "Address 4", int64(2)).
			WillReturnResult(sqlmock.NewResult(4, 1))
		mock.ExpectQuery(getHotelSQL).WithArgs(int64(4)).WillReturnRows(
			sqlmock.NewRows(hotelCols).AddRow(4, "Trybe Hotel São Paulo", "Address 4", 2, "Palmas"))

		hv, err := repo.CreateHotel(ctx, domain.NewHotel{Name: "Trybe Hotel São Paulo", Address: "Address 4", CityID: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), hv.ID)
		assert.Equal(t, domain.City{ID: 2, Name: "Palmas"}, hv.City())
	})

	t.Run("unknown city is a reference error", func(t *testing.T) {
		mock.ExpectExec(insertHotelSQL).WithArgs("Ghost", "Nowhere", int64(99)).
			WillReturnError(&gomysql.MySQLError{Number: errNoReferencedRow, Message: "a foreign key constraint fails"})

		_, err := repo.CreateHotel(ctx, domain.NewHotel{Name: "Ghost", Address: "Nowhere", CityID: 99})
		assert.ErrorIs(t, err, domain.ErrReference)
	})

	t.Run("other driver errors are wrapped", func(t *testing.T) {
		boom := errors.New("connection reset")
		mock.ExpectExec(insertHotelSQL).WithArgs("H", "A", int64(1)).WillReturnError(boom)

		_, err := repo.CreateHotel(ctx, domain.NewHotel{Name: "H", Address: "A", CityID: 1})
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrReference)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ListHotels(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(listHotelsSQL).WillReturnRows(sqlmock.NewRows(hotelCols).
		AddRow(1, "Trybe Hotel Manaus", "Address 1", 1, "Manaus").
		AddRow(2, "Trybe Hotel Palmas", "Address 2", 2, "Palmas"))

	hs, err := (&Repo{q: db}).ListHotels(context.Background())
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, "Manaus", hs[0].CityName)
	assert.Equal(t, int64(2), hs[1].CityID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Rooms(t *testing.T) {
	db, mock := newMock(t)
	repo := &Repo{q: db}
	ctx := context.Background()
	roomCols := []string{"id", "name", "capacity", "image", "hotel_id", "name", "address", "city_id", "name"}

	t.Run("create then resolve", func(t *testing.T) {
		mock.ExpectExec(insertRoomSQL).WithArgs("Room 10", 5, "Image 10", int64(2)).
			WillReturnResult(sqlmock.NewResult(10, 1))
		mock.ExpectQuery(getRoomSQL).WithArgs(int64(10)).WillReturnRows(sqlmock.NewRows(roomCols).
			AddRow(10, "Room 10", 5, "Image 10", 2, "Trybe Hotel Palmas", "Address 2", 2, "Palmas"))

		rv, err := repo.CreateRoom(ctx, domain.NewRoom{Name: "Room 10", Capacity: 5, Image: "Image 10", HotelID: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(2), rv.HotelID)
		assert.Equal(t, int64(2), rv.Hotel.ID)
		assert.Equal(t, "Palmas", rv.Hotel.CityName)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		mock.ExpectExec(insertRoomSQL).WithArgs("Room X", 1, "", int64(50)).
			WillReturnError(&gomysql.MySQLError{Number: errNoReferencedRow})

		_, err := repo.CreateRoom(ctx, domain.NewRoom{Name: "Room X", Capacity: 1, HotelID: 50})
		var ref *domain.ReferenceError
		require.ErrorAs(t, err, &ref)
		assert.Equal(t, "hotel", ref.Entity)
	})

	t.Run("capacity rejected by the column", func(t *testing.T) {
		for _, n := range []uint16{errOutOfRange, errCheckConstraintFail} {
			mock.ExpectExec(insertRoomSQL).WithArgs("Room Big", 3000000000, "Image", int64(2)).
				WillReturnError(&gomysql.MySQLError{Number: n, Message: "Out of range value for column 'capacity'"})

			_, err := repo.CreateRoom(ctx, domain.NewRoom{Name: "Room Big", Capacity: 3000000000, Image: "Image", HotelID: 2})
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve, "mysql error %d", n)
			assert.Equal(t, "capacity", ve.Fields[0].Field)
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		mock.ExpectQuery(getRoomSQL).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetRoom(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rooms of hotel", func(t *testing.T) {
		mock.ExpectQuery(listRoomsByHotelSQL).WithArgs(int64(1)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "capacity", "image"}).
				AddRow(1, "Room 1", 2, "Image 1").
				AddRow(2, "Room 2", 3, "Image 2"))

		rs, err := repo.ListRoomsByHotel(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.Room{
			{ID: 1, Name: "Room 1", Capacity: 2, Image: "Image 1", HotelID: 1},
			{ID: 2, Name: "Room 2", Capacity: 3, Image: "Image 2", HotelID: 1},
		}, rs)
	})

	t.Run("hotel without rooms", func(t *testing.T) {
		mock.ExpectQuery(listRoomsByHotelSQL).WithArgs(int64(3)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "capacity", "image"}).AddRow(nil, nil, nil, nil))

		rs, err := repo.ListRoomsByHotel(ctx, 3)
		require.NoError(t, err)
		assert.NotNil(t, rs)
		assert.Empty(t, rs)
	})

	t.Run("unknown hotel listing", func(t *testing.T) {
		mock.ExpectQuery(listRoomsByHotelSQL).WithArgs(int64(8)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "capacity", "image"}))

		_, err := repo.ListRoomsByHotel(ctx, 8)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SessionUsesDedicatedConn(t *testing.T) {
	db, mock := newMock(t)
	st := NewStore(db)
	ctx := context.Background()

	mock.ExpectQuery(getCitySQL).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Manaus"))

	sess, err := st.Open(ctx)
	require.NoError(t, err)
	c, err := sess.GetCity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Manaus", c.Name)
	require.NoError(t, sess.Close())

	// a closed session's connection is back in the pool and unusable
	_, err = sess.GetCity(ctx, 1)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
