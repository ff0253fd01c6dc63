package store

import (
	"context"
	"fmt"
	"log/slog"

	"skillswap_server/config"
	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	// keyAttribute is the partition key of every table.
	keyAttribute = "id"

	// EmailIndex is the GSI on the accounts table keyed by email.
	EmailIndex = "email-index"
)

// DynamoStore keeps each collection in its own DynamoDB table. Documents are
// keyed by a UUID string under "id".
type DynamoStore struct {
	dynamo *DynamoService
	tables config.Tables
}

// NewDynamoStore wraps a DynamoDB client.
func NewDynamoStore(client DynamoAPI, tables config.Tables, logger *slog.Logger) *DynamoStore {
	return &DynamoStore{
		dynamo: &DynamoService{Client: client, Logger: logger.With("component", "dynamo_store")},
		tables: tables,
	}
}

func (d *DynamoStore) Accounts() AccountStore {
	return dynamoAccounts{dynamo: d.dynamo, table: d.tables.Accounts}
}

func (d *DynamoStore) Swaps() SwapStore {
	return dynamoSwaps{dynamo: d.dynamo, table: d.tables.Swaps}
}

func (d *DynamoStore) Announcements() AnnouncementStore {
	return dynamoAnnouncements{dynamo: d.dynamo, table: d.tables.Announcements}
}

// Close is a no-op; the SDK client holds no connections that need closing.
func (d *DynamoStore) Close(ctx context.Context) error { return nil }

type dynamoAccounts struct {
	dynamo *DynamoService
	table  string
}

func (s dynamoAccounts) Insert(ctx context.Context, account *models.Account) error {
	account.ID = uuid.New().String()
	if err := s.dynamo.PutItem(ctx, s.table, account); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (s dynamoAccounts) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	items, err := s.dynamo.QueryItemsWithIndex(ctx, s.table, EmailIndex,
		"#email = :email",
		map[string]types.AttributeValue{":email": &types.AttributeValueMemberS{Value: email}},
		map[string]string{"#email": "email"},
		1,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account by email: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrAccountNotFound
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(items[0], &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}
	return &account, nil
}

func (s dynamoAccounts) List(ctx context.Context, publicOnly bool) ([]models.Account, error) {
	var (
		filter string
		names  map[string]string
		values map[string]types.AttributeValue
	)
	if publicOnly {
		filter = "#public = :public"
		names = map[string]string{"#public": "public"}
		values = map[string]types.AttributeValue{":public": &types.AttributeValueMemberBOOL{Value: true}}
	}

	items, err := s.dynamo.ScanWithFilter(ctx, s.table, filter, names, values)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}
	return accounts, nil
}

func (s dynamoAccounts) UpdateByEmail(ctx context.Context, email string, patch models.AccountPatch) (int64, error) {
	account, err := s.FindByEmail(ctx, email)
	if err != nil {
		if IsNotFoundError(err) {
			return 0, nil
		}
		return 0, err
	}
	return s.update(ctx, account.ID, patch)
}

func (s dynamoAccounts) UpdateByID(ctx context.Context, id string, patch models.AccountPatch) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}
	return s.update(ctx, id, patch)
}

func (s dynamoAccounts) update(ctx context.Context, id string, patch models.AccountPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	expr, names, values, err := buildSetExpression(patch.Fields())
	if err != nil {
		return 0, err
	}

	matched, err := s.dynamo.UpdateExistingItem(ctx, s.table, idKey(id), expr, names, values)
	if err != nil {
		return 0, fmt.Errorf("failed to update account: %w", err)
	}
	return boolCount(matched), nil
}

func (s dynamoAccounts) DeleteByID(ctx context.Context, id string) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}

	deleted, err := s.dynamo.DeleteItem(ctx, s.table, idKey(id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete account: %w", err)
	}
	return boolCount(deleted), nil
}

type dynamoSwaps struct {
	dynamo *DynamoService
	table  string
}

func (s dynamoSwaps) Insert(ctx context.Context, swap *models.SwapRequest) error {
	swap.ID = uuid.New().String()
	if err := s.dynamo.PutItem(ctx, s.table, swap); err != nil {
		return fmt.Errorf("failed to insert swap request: %w", err)
	}
	return nil
}

func (s dynamoSwaps) ListByParticipant(ctx context.Context, email string) ([]models.SwapRequest, error) {
	items, err := s.dynamo.ScanWithFilter(ctx, s.table,
		"#from = :email OR #to = :email",
		map[string]string{"#from": "from_user_email", "#to": "to_user_email"},
		map[string]types.AttributeValue{":email": &types.AttributeValueMemberS{Value: email}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list swaps for user: %w", err)
	}
	return unmarshalSwaps(items)
}

func (s dynamoSwaps) List(ctx context.Context) ([]models.SwapRequest, error) {
	items, err := s.dynamo.ScanWithFilter(ctx, s.table, "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list swaps: %w", err)
	}
	return unmarshalSwaps(items)
}

func (s dynamoSwaps) FindByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	id, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.dynamo.GetItem(ctx, s.table, idKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swap: %w", err)
	}
	if item == nil {
		return nil, ErrSwapNotFound
	}

	var swap models.SwapRequest
	if err := attributevalue.UnmarshalMap(item, &swap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swap: %w", err)
	}
	return &swap, nil
}

func (s dynamoSwaps) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}

	matched, err := s.dynamo.UpdateExistingItem(ctx, s.table, idKey(id),
		"SET #status = :status",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: status}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update swap status: %w", err)
	}
	return boolCount(matched), nil
}

func (s dynamoSwaps) Delete(ctx context.Context, id string) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}

	deleted, err := s.dynamo.DeleteItem(ctx, s.table, idKey(id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete swap: %w", err)
	}
	return boolCount(deleted), nil
}

func unmarshalSwaps(items []map[string]types.AttributeValue) ([]models.SwapRequest, error) {
	swaps := make([]models.SwapRequest, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &swaps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swaps: %w", err)
	}
	return swaps, nil
}

type dynamoAnnouncements struct {
	dynamo *DynamoService
	table  string
}

func (s dynamoAnnouncements) Insert(ctx context.Context, announcement *models.Announcement) error {
	id := uuid.New().String()
	item := announcement.Document()
	item[keyAttribute] = id
	if err := s.dynamo.PutItem(ctx, s.table, item); err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	announcement.ID = id
	return nil
}

func boolCount(ok bool) int64 {
	if ok {
		return 1
	}
	return 0
}
