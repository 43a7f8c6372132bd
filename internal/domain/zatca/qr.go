// Package zatca builds the machine-readable compliance payload printed on
// every simplified tax invoice as a QR code.
//
// The payload is a TLV (tag-length-value) sequence, base64 encoded:
//
//	tag 1  seller name
//	tag 2  seller tax registration number (TRN)
//	tag 3  invoice timestamp, RFC 3339
//	tag 4  invoice total (VAT inclusive), 2 decimals
//	tag 5  VAT amount, 2 decimals
//
// Each field is one tag byte, one length byte and the UTF-8 value bytes.
// The encoded string is stored on the invoice as an opaque qrPayload and is
// never re-derived at render time.
package zatca

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TLV tags of the simplified invoice payload.
const (
	TagSellerName = 1
	TagTRN        = 2
	TagTimestamp  = 3
	TagTotal      = 4
	TagVAT        = 5
)

var (
	ErrNilParams     = errors.New("zatca: nil params")
	ErrMissingSeller = errors.New("zatca: seller name is required")
	ErrMissingTRN    = errors.New("zatca: tax registration number is required")
	ErrZeroTimestamp = errors.New("zatca: timestamp is required")
)

// Params are the inputs of the payload.
type Params struct {
	SellerName string
	TRN        string
	Timestamp  time.Time
	Total      decimal.Decimal // VAT-inclusive invoice total
	VAT        decimal.Decimal
}

// Encode validates p and returns the base64 TLV payload.
func Encode(p *Params) (string, error) {
	if p == nil {
		return "", ErrNilParams
	}
	if p.SellerName == "" {
		return "", ErrMissingSeller
	}
	if p.TRN == "" {
		return "", ErrMissingTRN
	}
	if p.Timestamp.IsZero() {
		return "", ErrZeroTimestamp
	}

	fields := []struct {
		tag   byte
		value string
	}{
		{TagSellerName, p.SellerName},
		{TagTRN, p.TRN},
		{TagTimestamp, p.Timestamp.Format(time.RFC3339)},
		{TagTotal, p.Total.StringFixed(2)},
		{TagVAT, p.VAT.StringFixed(2)},
	}

	var buf []byte
	for _, f := range fields {
		v := []byte(f.value)
		if len(v) > 255 {
			return "", fmt.Errorf("zatca: field %d exceeds 255 bytes", f.tag)
		}
		buf = append(buf, f.tag, byte(len(v)))
		buf = append(buf, v...)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// Decode parses a base64 TLV payload back into its tagged fields.
// Used for verification; the application treats the payload as opaque.
func Decode(payload string) (map[byte]string, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("zatca: decode base64: %w", err)
	}
	fields := make(map[byte]string)
	for i := 0; i < len(raw); {
		if i+2 > len(raw) {
			return nil, errors.New("zatca: truncated TLV header")
		}
		tag, length := raw[i], int(raw[i+1])
		i += 2
		if i+length > len(raw) {
			return nil, fmt.Errorf("zatca: truncated value for tag %d", tag)
		}
		fields[tag] = string(raw[i : i+length])
		i += length
	}
	return fields, nil
}
