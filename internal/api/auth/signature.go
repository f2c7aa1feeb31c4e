package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateSignature signs the edit link handed to a frame's owner.
func GenerateSignature(frameID, ownerID, secretKey string) string {
	data := fmt.Sprintf("signaturePayload:%s:%s", frameID, ownerID)
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func ValidateSignature(frameID, ownerID, receivedSig, secretKey string) bool {
	expectedSig := GenerateSignature(frameID, ownerID, secretKey)
	return hmac.Equal([]byte(expectedSig), []byte(receivedSig))
}
