package docstore

import (
	"context"
	"errors"
	"time"

	"party-rental/internal/domain/contact"
	"party-rental/internal/infra"
	"party-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const contactsCollection = "contacts"

type contactDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     *string   `bson:"phone,omitempty"`
	Message   string    `bson:"message"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type ContactStore struct {
	coll *mongo.Collection
}

func NewContactStore(db *mongo.Database) *ContactStore {
	return &ContactStore{coll: db.Collection(contactsCollection)}
}

// EnsureIndexes backs the admin list, which filters by status and pages
// newest first.
func (s *ContactStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create contact indexes", err)
	}
	return nil
}

func (s *ContactStore) Create(ctx context.Context, c *contact.Contact) error {
	if _, err := s.coll.InsertOne(ctx, contactToDoc(c)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("contact already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert contact", err)
	}
	return nil
}

func (s *ContactStore) FindByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	var doc contactDoc
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("contact not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contact", err)
	}
	return contactFromDoc(doc)
}

func (s *ContactStore) UpdateStatus(ctx context.Context, c *contact.Contact) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: c.ID().String()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: c.Status().String()},
			{Key: "updated_at", Value: c.UpdatedAt()},
		}}},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update contact status", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("contact not found", nil, infra.KindNotFound)
	}
	return nil
}

// List pages on (created_at, _id) descending.
func (s *ContactStore) List(ctx context.Context, filter queries.ContactListFilter) ([]*contact.Contact, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(filter.Limit))

	cur, err := s.coll.Find(ctx, listFilter(filter), opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts", err)
	}
	defer cur.Close(ctx)

	var docs []contactDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode contacts", err)
	}

	out := make([]*contact.Contact, 0, len(docs))
	for _, doc := range docs {
		c, err := contactFromDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func listFilter(filter queries.ContactListFilter) bson.D {
	f := bson.D{}
	if filter.Status != nil {
		f = append(f, bson.E{Key: "status", Value: filter.Status.String()})
	}
	if filter.After != nil {
		after := filter.After
		f = append(f, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$lt", Value: after.CreatedAt}}}},
			bson.D{
				{Key: "created_at", Value: after.CreatedAt},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: after.ID.String()}}},
			},
		}})
	}
	return f
}

func contactToDoc(c *contact.Contact) contactDoc {
	return contactDoc{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Message:   c.Message(),
		Status:    c.Status().String(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func contactFromDoc(doc contactDoc) (*contact.Contact, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid contact id", err)
	}
	status, err := contact.ParseStatus(doc.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid contact status", err)
	}
	return contact.ReconstructContact(id, doc.Name, doc.Email, doc.Phone, doc.Message, status, doc.CreatedAt, doc.UpdatedAt), nil
}
