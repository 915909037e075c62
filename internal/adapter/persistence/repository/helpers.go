package repository

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func chunkStrings(in []string, size int) [][]string {
	var out [][]string
	for len(in) > size {
		out = append(out, in[:size])
		in = in[size:]
	}
	if len(in) > 0 {
		out = append(out, in)
	}
	return out
}

// batchDeleteByKey removes the given keys from a table in BatchWriteItem
// chunks of 25, retrying unprocessed items until the store accepts them.
func batchDeleteByKey(ctx context.Context, ddb *dynamodb.Client, tableName, keyName string, keys []string) error {
	for _, chunk := range chunkStrings(keys, 25) {
		writes := make([]types.WriteRequest, 0, len(chunk))
		for _, k := range chunk {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						keyName: &types.AttributeValueMemberS{Value: k},
					},
				},
			})
		}

		pending := map[string][]types.WriteRequest{tableName: writes}
		for len(pending[tableName]) > 0 {
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func conditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
