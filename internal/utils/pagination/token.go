package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into at most n fields; the last field
// keeps any separators it contains. n < 0 returns every field.
func DecodeMultiFieldToken(token string, n int) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.SplitN(string(decodedBytes), "|", n), nil
}

// EncodeOffsetToken creates a cursor pointing offset items into an ordered list.
// The last transaction ID seen is carried along so a stale cursor can be detected.
func EncodeOffsetToken(offset int, lastID string) string {
	return EncodeMultiFieldToken(strconv.Itoa(offset), lastID)
}

// DecodeOffsetToken reverses EncodeOffsetToken. The last ID is everything after
// the first separator, so IDs containing "|" survive the round trip.
func DecodeOffsetToken(token string) (int, string, error) {
	parts, err := DecodeMultiFieldToken(token, 2)
	if err != nil {
		return 0, "", err
	}
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, "", fmt.Errorf("invalid pagination token format (offset)")
	}
	return offset, parts[1], nil
}
