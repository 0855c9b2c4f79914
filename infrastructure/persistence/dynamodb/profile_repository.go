// Package dynamodb persists profiles in a single-table layout. Every record
// of a user lives under one partition key, so a full profile is one Query.
package dynamodb

import (
	"context"
	"fmt"
	"strings"

	"journeymap/application/ports"
	"journeymap/domain/core/entities"
	apperrors "journeymap/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Sort-key prefixes of the single-table layout.
const (
	skProfile     = "PROFILE"
	skCourse      = "COURSE#"
	skSkill       = "SKILL#"
	skProject     = "PROJECT#"
	skGoal        = "GOAL#"
	skAchievement = "ACHIEVEMENT#"
	skActivity    = "ACTIVITY#"
)

// batchWriteMax is DynamoDB's BatchWriteItem limit.
const batchWriteMax = 25

// ProfileRepository implements ports.ProfileRepository on DynamoDB.
type ProfileRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProfileRepository creates a ProfileRepository.
func NewProfileRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProfileRepository {
	return &ProfileRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

func pk(userID string) string {
	return "USER#" + userID
}

// GetProfile loads a user's full profile with one partition query.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(pk(userID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query expression").WithCause(err)
	}

	profile := &entities.Profile{}
	found := false

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			r.logger.Error("profile query failed", zap.String("user_id", userID), zap.Error(err))
			return nil, apperrors.NewInternalError("failed to load profile").WithCause(err)
		}

		for _, item := range out.Items {
			if err := r.collect(profile, item); err != nil {
				return nil, err
			}
			if sortKey(item) == skProfile {
				found = true
			}
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	if !found {
		return nil, apperrors.NewNotFoundError("User")
	}
	return profile, nil
}

// SaveProfile replaces a user's stored profile. Records removed from the
// profile are deleted, everything else is overwritten.
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *entities.Profile) error {
	userID := profile.User.ID
	existing, err := r.existingKeys(ctx, userID)
	if err != nil {
		return err
	}

	writes, err := r.putRequests(profile)
	if err != nil {
		return err
	}
	for _, w := range writes {
		sk, _ := w.PutRequest.Item["SK"].(*types.AttributeValueMemberS)
		if sk != nil {
			delete(existing, sk.Value)
		}
	}
	for sk := range existing {
		writes = append(writes, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: pk(userID)},
					"SK": &types.AttributeValueMemberS{Value: sk},
				},
			},
		})
	}

	for start := 0; start < len(writes); start += batchWriteMax {
		end := start + batchWriteMax
		if end > len(writes) {
			end = len(writes)
		}
		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: writes[start:end],
			},
		})
		if err != nil {
			r.logger.Error("profile batch write failed", zap.String("user_id", userID), zap.Error(err))
			return apperrors.NewInternalError("failed to save profile").WithCause(err)
		}
	}

	r.logger.Info("profile saved",
		zap.String("user_id", userID),
		zap.Int("records", len(writes)))
	return nil
}

// existingKeys returns the sort keys currently stored for a user.
func (r *ProfileRepository) existingKeys(ctx context.Context, userID string) (map[string]bool, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(pk(userID)))
	proj := expression.NamesList(expression.Name("SK"))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithProjection(proj).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query expression").WithCause(err)
	}

	keys := make(map[string]bool)
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ProjectionExpression:      expr.Projection(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, apperrors.NewInternalError("failed to list profile records").WithCause(err)
		}
		for _, item := range out.Items {
			keys[sortKey(item)] = true
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return keys, nil
}

func (r *ProfileRepository) putRequests(profile *entities.Profile) ([]types.WriteRequest, error) {
	userID := profile.User.ID
	var writes []types.WriteRequest

	add := func(sk string, record any) error {
		item, err := marshalItem(record)
		if err != nil {
			return apperrors.NewInternalError("failed to marshal profile record").WithCause(err)
		}
		item["PK"] = &types.AttributeValueMemberS{Value: pk(userID)}
		item["SK"] = &types.AttributeValueMemberS{Value: sk}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
		return nil
	}

	if err := add(skProfile, profile.User); err != nil {
		return nil, err
	}
	for _, c := range profile.Courses {
		if err := add(skCourse+c.ID, c); err != nil {
			return nil, err
		}
	}
	for _, s := range profile.Skills {
		if err := add(skSkill+s.ID, s); err != nil {
			return nil, err
		}
	}
	for _, p := range profile.Projects {
		if err := add(skProject+p.ID, p); err != nil {
			return nil, err
		}
	}
	for _, g := range profile.Goals {
		if err := add(skGoal+g.ID, g); err != nil {
			return nil, err
		}
	}
	for _, a := range profile.Achievements {
		if err := add(skAchievement+a.ID, a); err != nil {
			return nil, err
		}
	}
	for _, a := range profile.Activities {
		if err := add(skActivity+a.ID, a); err != nil {
			return nil, err
		}
	}
	return writes, nil
}

// collect routes one stored item into the profile slice its sort key names.
func (r *ProfileRepository) collect(profile *entities.Profile, item map[string]types.AttributeValue) error {
	sk := sortKey(item)
	var err error
	switch {
	case sk == skProfile:
		err = unmarshalItem(item, &profile.User)
	case strings.HasPrefix(sk, skCourse):
		var c entities.Course
		if err = unmarshalItem(item, &c); err == nil {
			profile.Courses = append(profile.Courses, c)
		}
	case strings.HasPrefix(sk, skSkill):
		var s entities.Skill
		if err = unmarshalItem(item, &s); err == nil {
			profile.Skills = append(profile.Skills, s)
		}
	case strings.HasPrefix(sk, skProject):
		var p entities.Project
		if err = unmarshalItem(item, &p); err == nil {
			profile.Projects = append(profile.Projects, p)
		}
	case strings.HasPrefix(sk, skGoal):
		var g entities.Goal
		if err = unmarshalItem(item, &g); err == nil {
			profile.Goals = append(profile.Goals, g)
		}
	case strings.HasPrefix(sk, skAchievement):
		var a entities.Achievement
		if err = unmarshalItem(item, &a); err == nil {
			profile.Achievements = append(profile.Achievements, a)
		}
	case strings.HasPrefix(sk, skActivity):
		var a entities.Activity
		if err = unmarshalItem(item, &a); err == nil {
			profile.Activities = append(profile.Activities, a)
		}
	default:
		r.logger.Warn("unknown record type skipped", zap.String("sort_key", sk))
	}
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to unmarshal record %s", sk)).WithCause(err)
	}
	return nil
}

func sortKey(item map[string]types.AttributeValue) string {
	if v, ok := item["SK"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

// Entities carry json tags only, so the encoder is pointed at them.

func marshalItem(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, func(o *attributevalue.EncoderOptions) {
		o.TagKey = "json"
	})
}

func unmarshalItem(item map[string]types.AttributeValue, v any) error {
	return attributevalue.UnmarshalMapWithOptions(item, v, func(o *attributevalue.DecoderOptions) {
		o.TagKey = "json"
	})
}
