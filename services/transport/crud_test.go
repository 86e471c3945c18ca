package transport

import (
	"context"
	"errors"
	"sync"
	"testing"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

type memoryRepo struct {
	mu         sync.Mutex
	transports map[string]*models.Transport
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{transports: make(map[string]*models.Transport)}
}

func (r *memoryRepo) Create(ctx context.Context, t *models.Transport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transports[t.ID] = &cp
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*models.Transport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transports[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memoryRepo) List(ctx context.Context, filter bson.M) ([]models.Transport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Transport
	for _, t := range r.transports {
		if want, ok := filter["type"]; ok && t.Type != want {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *memoryRepo) Update(ctx context.Context, t *models.Transport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transports[t.ID] = &cp
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.transports, id)
	return nil
}

func (r *memoryRepo) SetSeatsBooked(ctx context.Context, transportID string, seatNumbers []string, booked bool) error {
	return nil
}

func validInput() *models.Transport {
	return &models.Transport{
		Type:          models.TransportTypeBus,
		Name:          "Coastal Liner",
		Source:        "Mombasa",
		Destination:   "Nairobi",
		DepartureTime: "07:30",
		ArrivalTime:   "15:00",
		DistanceInKm:  480,
		AvailableDays: []string{"Monday", "Saturday"},
		Classes: []models.TransportClass{
			{Name: "Standard", Price: 1500, DefaultSeats: 2},
		},
	}
}

func TestAdd_DerivesSeatMapOnce(t *testing.T) {
	svc := &DefaultTransportService{Repo: newMemoryRepo()}

	created, err := svc.Add(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated ID")
	}
	if len(created.Seats) != 2 || created.Seats[0].SeatNumber != "A1" {
		t.Fatalf("expected derived seats [A1 A2], got %+v", created.Seats)
	}

	// An update with a pruned seat list must not re-derive seats.
	created.Seats = created.Seats[:1]
	updated, err := svc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Seats) != 1 {
		t.Fatalf("update must not re-run seat derivation, got %d seats", len(updated.Seats))
	}
}

func TestAdd_KeepsSuppliedSeats(t *testing.T) {
	svc := &DefaultTransportService{Repo: newMemoryRepo()}

	in := validInput()
	in.Seats = []models.Seat{{SeatNumber: "S1", ClassType: "Standard"}}
	created, err := svc.Add(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Seats) != 1 || created.Seats[0].SeatNumber != "S1" {
		t.Fatalf("supplied seats must be kept as-is, got %+v", created.Seats)
	}
}

func TestAdd_Validation(t *testing.T) {
	svc := &DefaultTransportService{Repo: newMemoryRepo()}

	cases := []func(*models.Transport){
		func(in *models.Transport) { in.Name = "" },
		func(in *models.Transport) { in.Type = "boat" },
		func(in *models.Transport) { in.AvailableDays = []string{"Funday"} },
		func(in *models.Transport) { in.Classes[0].Price = -1 },
		func(in *models.Transport) {
			in.Seats = []models.Seat{{SeatNumber: "X1", ClassType: "Undefined"}}
		},
		func(in *models.Transport) {
			in.Seats = []models.Seat{
				{SeatNumber: "A1", ClassType: "Standard"},
				{SeatNumber: "A1", ClassType: "Standard"},
			}
		},
	}

	for i, mutate := range cases {
		in := validInput()
		mutate(in)
		_, err := svc.Add(context.Background(), in)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &DefaultTransportService{Repo: newMemoryRepo()}

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
