package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skillswap_server/config"
	"skillswap_server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps each collection in a MongoDB collection. Identifiers are
// ObjectIDs rendered as hex strings.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	tables config.Tables
	logger *slog.Logger
}

// OpenMongo connects to url and verifies the connection with a ping.
func OpenMongo(ctx context.Context, url, database string, tables config.Tables, logger *slog.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(database),
		tables: tables,
		logger: logger.With("component", "mongo_store"),
	}, nil
}

func (m *MongoStore) Accounts() AccountStore {
	return mongoAccounts{coll: m.db.Collection(m.tables.Accounts)}
}

func (m *MongoStore) Swaps() SwapStore {
	return mongoSwaps{coll: m.db.Collection(m.tables.Swaps)}
}

func (m *MongoStore) Announcements() AnnouncementStore {
	return mongoAnnouncements{coll: m.db.Collection(m.tables.Announcements)}
}

// Close disconnects the client.
func (m *MongoStore) Close(ctx context.Context) error {
	m.logger.Info("disconnecting from mongodb")
	return m.client.Disconnect(ctx)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, invalidID(id)
	}
	return oid, nil
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}

type accountDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Password      string             `bson:"password,omitempty"`
	Location      string             `bson:"location"`
	SkillsOffered []string           `bson:"skills_offered"`
	SkillsWanted  []string           `bson:"skills_wanted"`
	Availability  string             `bson:"availability"`
	Role          string             `bson:"role"`
	Public        bool               `bson:"public"`
	Banned        bool               `bson:"banned"`
	AvatarKey     string             `bson:"avatar_key,omitempty"`
}

func newAccountDocument(a *models.Account) accountDocument {
	return accountDocument{
		Name:          a.Name,
		Email:         a.Email,
		Password:      a.Password,
		Location:      a.Location,
		SkillsOffered: a.SkillsOffered,
		SkillsWanted:  a.SkillsWanted,
		Availability:  a.Availability,
		Role:          a.Role,
		Public:        a.Public,
		Banned:        a.Banned,
		AvatarKey:     a.AvatarKey,
	}
}

func (d accountDocument) model() models.Account {
	return models.Account{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Email:         d.Email,
		Password:      d.Password,
		Location:      d.Location,
		SkillsOffered: d.SkillsOffered,
		SkillsWanted:  d.SkillsWanted,
		Availability:  d.Availability,
		Role:          d.Role,
		Public:        d.Public,
		Banned:        d.Banned,
		AvatarKey:     d.AvatarKey,
	}
}

type mongoAccounts struct{ coll *mongo.Collection }

func (s mongoAccounts) Insert(ctx context.Context, account *models.Account) error {
	res, err := s.coll.InsertOne(ctx, newAccountDocument(account))
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	account.ID = insertedHex(res)
	return nil
}

func (s mongoAccounts) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var doc accountDocument
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account by email: %w", err)
	}
	account := doc.model()
	return &account, nil
}

func (s mongoAccounts) List(ctx context.Context, publicOnly bool) ([]models.Account, error) {
	filter := bson.M{}
	if publicOnly {
		filter["public"] = true
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	var docs []accountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(docs))
	for _, d := range docs {
		accounts = append(accounts, d.model())
	}
	return accounts, nil
}

func (s mongoAccounts) UpdateByEmail(ctx context.Context, email string, patch models.AccountPatch) (int64, error) {
	return s.update(ctx, bson.M{"email": email}, patch)
}

func (s mongoAccounts) UpdateByID(ctx context.Context, id string, patch models.AccountPatch) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	return s.update(ctx, bson.M{"_id": oid}, patch)
}

func (s mongoAccounts) update(ctx context.Context, filter bson.M, patch models.AccountPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(patch.Fields())})
	if err != nil {
		return 0, fmt.Errorf("failed to update account: %w", err)
	}
	return res.MatchedCount, nil
}

func (s mongoAccounts) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete account: %w", err)
	}
	return res.DeletedCount, nil
}

type swapDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FromUserEmail string             `bson:"from_user_email"`
	ToUserEmail   string             `bson:"to_user_email"`
	SkillOffered  string             `bson:"skill_offered"`
	SkillWanted   string             `bson:"skill_wanted"`
	Message       string             `bson:"message"`
	Status        string             `bson:"status"`
	CreatedAt     string             `bson:"created_at"`
}

func (d swapDocument) model() models.SwapRequest {
	return models.SwapRequest{
		ID:            d.ID.Hex(),
		FromUserEmail: d.FromUserEmail,
		ToUserEmail:   d.ToUserEmail,
		SkillOffered:  d.SkillOffered,
		SkillWanted:   d.SkillWanted,
		Message:       d.Message,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

type mongoSwaps struct{ coll *mongo.Collection }

func (s mongoSwaps) Insert(ctx context.Context, swap *models.SwapRequest) error {
	res, err := s.coll.InsertOne(ctx, swapDocument{
		FromUserEmail: swap.FromUserEmail,
		ToUserEmail:   swap.ToUserEmail,
		SkillOffered:  swap.SkillOffered,
		SkillWanted:   swap.SkillWanted,
		Message:       swap.Message,
		Status:        swap.Status,
		CreatedAt:     swap.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert swap request: %w", err)
	}
	swap.ID = insertedHex(res)
	return nil
}

func (s mongoSwaps) ListByParticipant(ctx context.Context, email string) ([]models.SwapRequest, error) {
	return s.find(ctx, bson.M{"$or": bson.A{
		bson.M{"from_user_email": email},
		bson.M{"to_user_email": email},
	}})
}

func (s mongoSwaps) List(ctx context.Context) ([]models.SwapRequest, error) {
	return s.find(ctx, bson.M{})
}

func (s mongoSwaps) find(ctx context.Context, filter bson.M) ([]models.SwapRequest, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list swaps: %w", err)
	}

	var docs []swapDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode swaps: %w", err)
	}

	swaps := make([]models.SwapRequest, 0, len(docs))
	for _, d := range docs {
		swaps = append(swaps, d.model())
	}
	return swaps, nil
}

func (s mongoSwaps) FindByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc swapDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSwapNotFound
		}
		return nil, fmt.Errorf("failed to fetch swap: %w", err)
	}
	swap := doc.model()
	return &swap, nil
}

func (s mongoSwaps) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, fmt.Errorf("failed to update swap status: %w", err)
	}
	return res.MatchedCount, nil
}

func (s mongoSwaps) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete swap: %w", err)
	}
	return res.DeletedCount, nil
}

type mongoAnnouncements struct{ coll *mongo.Collection }

func (s mongoAnnouncements) Insert(ctx context.Context, announcement *models.Announcement) error {
	res, err := s.coll.InsertOne(ctx, bson.M(announcement.Document()))
	if err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	announcement.ID = insertedHex(res)
	return nil
}
