package usecase

import (
	"context"
	"sort"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/gateway/paystack"
	"hotel-booking/pkg/failure"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeBookingRepo keeps bookings in memory and mirrors the blocking and
// idempotency rules of the real repository.
type fakeBookingRepo struct {
	bookings  map[uuid.UUID]*entity.Booking
	createErr error
	deleted   []uuid.UUID
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) seed(b *entity.Booking) *entity.Booking {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.bookings[b.ID] = b
	return b
}

func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	out := make([]*entity.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	// Newest first, like the repository's ORDER BY.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.Reference != nil && *b.Reference == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) countBlocking(roomName string, exclude uuid.UUID, start, end, now time.Time) int64 {
	var n int64
	for _, b := range f.bookings {
		if b.ID == exclude || b.RoomName != roomName {
			continue
		}
		if b.Blocks(start, end, now) {
			n++
		}
	}
	return n
}

func (f *fakeBookingRepo) CountBlocking(ctx context.Context, roomName string, start, end, now time.Time) (int64, error) {
	return f.countBlocking(roomName, uuid.Nil, start, end, now), nil
}

func (f *fakeBookingRepo) BlockedRoomNumbers(ctx context.Context, category string, start, end, now time.Time) ([]int, error) {
	var out []int
	for _, b := range f.bookings {
		if b.RoomName == category && b.Blocks(start, end, now) {
			out = append(out, b.RoomNumber)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CreateExclusive(ctx context.Context, booking *entity.Booking, now time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.countBlocking(booking.RoomName, uuid.Nil, booking.CheckIn(), booking.Checkout(), now) > 0 {
		return failure.Conflict("room is already booked or reserved for the selected dates")
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) ConfirmPaid(ctx context.Context, reference string, method entity.PaymentMethod, now time.Time) (*entity.Booking, bool, error) {
	b, _ := f.FindByReference(ctx, reference)
	if b == nil {
		return nil, false, nil
	}
	if b.IsPaid || b.IsCancelled {
		return b, false, nil
	}
	if f.countBlocking(b.RoomName, b.ID, b.CheckIn(), b.Checkout(), now) > 0 {
		return nil, false, failure.Conflict("payment succeeded but the room is no longer available")
	}
	b.IsPaid = true
	b.PaymentStatus = entity.PaymentStatusPaid
	b.PaymentMethod = method
	b.UpdatedAt = now
	return b, true, nil
}

func (f *fakeBookingRepo) SetCancelled(ctx context.Context, id uuid.UUID) error {
	b, ok := f.bookings[id]
	if !ok {
		return failure.NotFound("booking")
	}
	b.IsCancelled = true
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return failure.NotFound("booking")
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookingRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(f.bookings))
	f.bookings = make(map[uuid.UUID]*entity.Booking)
	return n, nil
}

func (f *fakeBookingRepo) SettleDue(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if !b.IsCancelled && !b.IsPaid && !b.StartDate.After(now) {
			b.IsPaid = true
			b.PaymentStatus = entity.PaymentStatusSettled
			b.PaymentMethod = entity.PaymentMethodSettled
			n++
		}
	}
	return n, nil
}

type fakeRoomRepo struct {
	rooms []*entity.Room
}

func (f *fakeRoomRepo) FindAll(ctx context.Context) ([]*entity.Room, error) {
	return f.rooms, nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	for _, r := range f.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		if r.Name == category {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeGateway struct {
	initFn    func(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeResult, error)
	verifyFn  func(ctx context.Context, reference string) (*paystack.VerifyResult, error)
	initCalls []paystack.InitializeRequest
}

func (f *fakeGateway) Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeResult, error) {
	f.initCalls = append(f.initCalls, req)
	if f.initFn != nil {
		return f.initFn(ctx, req)
	}
	return &paystack.InitializeResult{
		AuthorizationURL: "https://checkout.paystack.com/" + req.Reference,
		AccessCode:       "access-" + req.Reference,
		Reference:        req.Reference,
	}, nil
}

func (f *fakeGateway) Verify(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, reference)
	}
	return &paystack.VerifyResult{Success: true, Status: "success"}, nil
}

func newTestRepo(booking *fakeBookingRepo, rooms ...*entity.Room) *repository.Repository {
	return &repository.Repository{
		Booking: booking,
		Room:    &fakeRoomRepo{rooms: rooms},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
