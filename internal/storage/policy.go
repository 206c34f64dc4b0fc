package storage

import (
	"encoding/json"
	"fmt"

	"github.com/hirelane/invoices/internal/entity"
)

const (
	policyVersion = "2012-10-17"

	// adminPrincipal is the only principal allowed to read private buckets.
	adminPrincipal = "arn:aws:iam::company:root"
)

type bucketPolicy struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Action    []string `json:"Action"`
	Effect    string   `json:"Effect"`
	Principal any      `json:"Principal"`
	Resource  string   `json:"Resource"`
}

// bucketPolicyJSON renders the access policy applied to a new bucket.
// Public buckets grant the anonymous principal read access, private ones
// grant the same actions to the administrative principal only.
func bucketPolicyJSON(bucket string, public bool) (string, error) {
	var principal any = "*"
	if !public {
		principal = map[string]string{"AWS": adminPrincipal}
	}

	bucketARN := "arn:aws:s3:::" + bucket

	policy := bucketPolicy{
		Version: policyVersion,
		Statement: []policyStatement{
			{
				Action:    []string{"s3:GetBucketLocation", "s3:ListBucket"},
				Effect:    "Allow",
				Principal: principal,
				Resource:  bucketARN,
			},
			{
				Action:    []string{"s3:GetObject"},
				Effect:    "Allow",
				Principal: principal,
				Resource:  bucketARN + "/*",
			},
		},
	}

	b, err := json.Marshal(policy)
	if err != nil {
		return "", fmt.Errorf("%w: marshal bucket policy: %s", entity.ErrStorage, err)
	}

	return string(b), nil
}
