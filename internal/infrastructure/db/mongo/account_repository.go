package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

// accountCollections maps each role to the collection holding its accounts.
var accountCollections = map[domain.Role]string{
	domain.RoleClient:    "clients",
	domain.RoleTradesman: "tradesmen",
	domain.RoleReader:    "readers",
}

// AccountRepository implements ports.AccountRepository on MongoDB.
type AccountRepository struct {
	db *mongo.Database
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

type mongoShelfEntry struct {
	ID      string    `bson:"id"`
	Title   string    `bson:"title"`
	Author  string    `bson:"author,omitempty"`
	AddedAt time.Time `bson:"added_at"`
}

type mongoAccount struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Surname       string             `bson:"surname"`
	Email         string             `bson:"email,omitempty"`
	Username      string             `bson:"username,omitempty"`
	PasswordHash  string             `bson:"password_hash"`
	Phone         string             `bson:"phone,omitempty"`
	Trade         string             `bson:"trade,omitempty"`
	Rate          float64            `bson:"rate,omitempty"`
	SortCode      string             `bson:"sort_code,omitempty"`
	AccountNumber string             `bson:"account_number,omitempty"`
	Bio           string             `bson:"bio,omitempty"`
	DateOfBirth   *time.Time         `bson:"date_of_birth,omitempty"`
	City          string             `bson:"city,omitempty"`
	Country       string             `bson:"country,omitempty"`
	Shelf         []mongoShelfEntry  `bson:"shelf,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (r *AccountRepository) coll(role domain.Role) (*mongo.Collection, error) {
	name, ok := accountCollections[role]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	return r.db.Collection(name), nil
}

func (r *AccountRepository) FindByCredentials(ctx context.Context, role domain.Role, identifier, passwordHash string) (*domain.Account, error) {
	coll, err := r.coll(role)
	if err != nil {
		return nil, err
	}
	filter := bson.M{role.IdentifierField(): identifier, "password_hash": passwordHash}
	return r.findOne(ctx, coll, role, filter)
}

func (r *AccountRepository) FindByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error) {
	coll, err := r.coll(role)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, coll, role, bson.M{"_id": oid})
}

func (r *AccountRepository) ExistsByIdentifier(ctx context.Context, role domain.Role, identifier string) (bool, error) {
	coll, err := r.coll(role)
	if err != nil {
		return false, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := coll.CountDocuments(ctx, bson.M{role.IdentifierField(): identifier}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	return n > 0, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	coll, err := r.coll(account.Role)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := toMongoAccount(account)
	doc.ID = primitive.NilObjectID
	doc.CreatedAt, doc.UpdatedAt = now, now

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return fromMongoAccount(account.Role, &doc), nil
}

func (r *AccountRepository) Update(ctx context.Context, role domain.Role, id string, u ports.AccountUpdate) error {
	coll, err := r.coll(role)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	setIf := func(field string, v *string) {
		if v != nil {
			set[field] = *v
		}
	}
	setIf("name", u.Name)
	setIf("surname", u.Surname)
	setIf("email", u.Email)
	setIf("bio", u.Bio)
	setIf("city", u.City)
	setIf("country", u.Country)
	setIf("password_hash", u.PasswordHash)
	if u.DateOfBirth != nil {
		set["date_of_birth"] = u.DateOfBirth.UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, role domain.Role, id string) error {
	coll, err := r.coll(role)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// AddShelfEntry appends a book to a reader's shelf.
func (r *AccountRepository) AddShelfEntry(ctx context.Context, id string, entry domain.ShelfEntry) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"shelf": mongoShelfEntry{
			ID:      entry.ID,
			Title:   entry.Title,
			Author:  entry.Author,
			AddedAt: entry.AddedAt.UTC(),
		}},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.db.Collection(accountCollections[domain.RoleReader]).UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("add shelf entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// RemoveShelfEntry pulls one book off a reader's shelf.
func (r *AccountRepository) RemoveShelfEntry(ctx context.Context, id, entryID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "shelf.id": entryID}
	update := bson.M{
		"$pull": bson.M{"shelf": bson.M{"id": entryID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.db.Collection(accountCollections[domain.RoleReader]).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("remove shelf entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShelfEntryNotFound
	}
	return nil
}

func (r *AccountRepository) findOne(ctx context.Context, coll *mongo.Collection, role domain.Role, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAccount
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return fromMongoAccount(role, &doc), nil
}

func toMongoAccount(a *domain.Account) mongoAccount {
	doc := mongoAccount{
		Name:          a.Name,
		Surname:       a.Surname,
		Email:         a.Email,
		Username:      a.Username,
		PasswordHash:  a.PasswordHash,
		Phone:         a.Phone,
		Trade:         a.Trade,
		Rate:          a.Rate,
		SortCode:      a.SortCode,
		AccountNumber: a.AccountNumber,
		Bio:           a.Bio,
		DateOfBirth:   a.DateOfBirth,
		City:          a.Location.City,
		Country:       a.Location.Country,
	}
	if a.Shelf != nil {
		doc.Shelf = make([]mongoShelfEntry, 0, len(a.Shelf))
		for _, e := range a.Shelf {
			doc.Shelf = append(doc.Shelf, mongoShelfEntry{ID: e.ID, Title: e.Title, Author: e.Author, AddedAt: e.AddedAt})
		}
	}
	return doc
}

func fromMongoAccount(role domain.Role, doc *mongoAccount) *domain.Account {
	a := &domain.Account{
		ID:            doc.ID.Hex(),
		Role:          role,
		Name:          doc.Name,
		Surname:       doc.Surname,
		Email:         doc.Email,
		Username:      doc.Username,
		PasswordHash:  doc.PasswordHash,
		Phone:         doc.Phone,
		Trade:         doc.Trade,
		Rate:          doc.Rate,
		SortCode:      doc.SortCode,
		AccountNumber: doc.AccountNumber,
		Bio:           doc.Bio,
		DateOfBirth:   doc.DateOfBirth,
		Location:      domain.Location{City: doc.City, Country: doc.Country},
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	if role == domain.RoleReader {
		a.Shelf = make([]domain.ShelfEntry, 0, len(doc.Shelf))
		for _, e := range doc.Shelf {
			a.Shelf = append(a.Shelf, domain.ShelfEntry{ID: e.ID, Title: e.Title, Author: e.Author, AddedAt: e.AddedAt})
		}
	}
	return a
}
