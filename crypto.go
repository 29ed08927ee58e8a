package main

import (
	"bytes"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	"github.com/tink-crypto/tink-go/v2/streamingaead"
	"golang.org/x/crypto/scrypt"
	"google.golang.org/protobuf/proto"

	gcmhkdfpb "github.com/tink-crypto/tink-go/v2/proto/aes_gcm_hkdf_streaming_go_proto"
	commonpb "github.com/tink-crypto/tink-go/v2/proto/common_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
)

const (
	aesGcmHkdfStreamingTypeURL = "type.googleapis.com/google.crypto.tink.AesGcmHkdfStreamingKey"
	keysetSegmentSize          = 1 << 20 // 1MB
)

// KeyDeriver is a memory-hard KDF. Implementations must be deterministic.
type KeyDeriver interface {
	DeriveKey(secret, salt []byte, params ParameterSet) ([]byte, error)
}

// ScryptDeriver derives keys with scrypt (RFC 7914)
type ScryptDeriver struct{}

// DeriveKey runs scrypt once. params must come from NewParameterSet.
// Failures are returned as is and never retried with other parameters.
func (ScryptDeriver) DeriveKey(secret, salt []byte, params ParameterSet) ([]byte, error) {
	key, err := scrypt.Key(secret, salt, int(params.N()), int(params.R), int(params.P), params.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivation, err)
	}
	if len(key) != params.KeyLen {
		zeroBytes(key)
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", ErrDerivation, len(key), params.KeyLen)
	}
	return key, nil
}

// createKeysetFromKey wraps a raw key as a single-key AES-GCM-HKDF streaming
// keyset. Only AES-128 and AES-256 sized keys are accepted.
func createKeysetFromKey(key []byte) (*keyset.Handle, error) {
	if len(key) != 16 && len(key) != 32 {
		return nil, fmt.Errorf("%w: key length %d, need 16 or 32", ErrKeysetUnavailable, len(key))
	}

	keyValue, err := proto.Marshal(&gcmhkdfpb.AesGcmHkdfStreamingKey{
		Version: 0,
		Params: &gcmhkdfpb.AesGcmHkdfStreamingParams{
			CiphertextSegmentSize: keysetSegmentSize,
			DerivedKeySize:        uint32(len(key)),
			HkdfHashType:          commonpb.HashType_SHA256,
		},
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeysetUnavailable, err)
	}

	handle := insecurecleartextkeyset.KeysetHandle(&tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         aesGcmHkdfStreamingTypeURL,
				Value:           keyValue,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			Status:           tinkpb.KeyStatusType_ENABLED,
			KeyId:            1,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	})
	if handle == nil {
		return nil, fmt.Errorf("%w: invalid keyset", ErrKeysetUnavailable)
	}

	// Instantiating the primitive runs the key manager's validation
	if _, err := streamingaead.New(handle); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeysetUnavailable, err)
	}
	return handle, nil
}

// keysetJSON renders key as cleartext Tink keyset JSON
func keysetJSON(key []byte) (string, error) {
	handle, err := createKeysetFromKey(key)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := insecurecleartextkeyset.Write(handle, keyset.NewJSONWriter(&buf)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeysetUnavailable, err)
	}
	return buf.String(), nil
}
