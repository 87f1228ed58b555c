// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/actions"
	"github.com/noah-blockchain/noah-go-sdk/auth"
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/crypto"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
	"github.com/noah-blockchain/noah-go-sdk/fees"
)

// HashLen is the number of digest bytes shown in a transaction hash.
const HashLen = 20

// Envelope field names in wire order. The first nine form the signed
// message.
var TxFields = []string{
	"nonce",
	"chainId",
	"gasPrice",
	"gasCoin",
	"type",
	"data",
	"payload",
	"serviceData",
	"signatureType",
	"signatureData",
}

var requiredTxFields = []string{"nonce", "chainId", "gasPrice", "gasCoin", "type", "data"}

type txState uint8

const (
	built txState = iota
	signed
	decoded
)

// Transaction is the signed envelope around a single payload.
//
// A signed or decoded transaction is immutable. Its exported fields must not
// be changed after Sign or ParseTx; Hash, Fee and Sender return ErrModified
// if they no longer encode to the signed bytes.
type Transaction struct {
	Base *Base `json:"base"`

	Type uint8           `json:"type"`
	Data actions.Payload `json:"data"`

	// Payload and ServiceData are free-form bytes. Each byte adds to the fee.
	Payload     []byte `json:"payload"`
	ServiceData []byte `json:"serviceData"`

	SignatureType uint8                `json:"signatureType"`
	Signature     *secp256k1.Signature `json:"signatureData,omitempty"`

	digest []byte
	bytes  []byte
	sender codec.Address
	state  txState
}

// NewTx returns an unsigned transaction carrying [data].
func NewTx(base *Base, data actions.Payload) *Transaction {
	return &Transaction{
		Base:          base,
		Type:          data.GetTypeID(),
		Data:          data,
		SignatureType: auth.SingleSignatureID,
	}
}

// BuildTx constructs an unsigned transaction from its semantic fields. data
// may be a nested field set or an actions.Payload; payload, serviceData and
// signatureType are optional.
func BuildTx(f codec.Fields) (*Transaction, error) {
	if err := f.Allow(TxFields[:9]); err != nil {
		return nil, err
	}
	for _, name := range requiredTxFields {
		if _, ok := f[name]; !ok {
			return nil, fmt.Errorf("%w: %q", codec.ErrUndefinedField, name)
		}
	}

	r := codec.NewFieldReader(f, nil)
	tx := &Transaction{
		Base: &Base{
			Nonce:    r.Uint64("nonce"),
			ChainID:  r.Uint8("chainId"),
			GasPrice: r.Uint64("gasPrice"),
			GasCoin:  r.Symbol("gasCoin"),
		},
		Type:          r.Uint8("type"),
		SignatureType: auth.SingleSignatureID,
	}
	if r.Has("payload") {
		tx.Payload = []byte(r.String("payload"))
	}
	if r.Has("serviceData") {
		tx.ServiceData = []byte(r.String("serviceData"))
	}
	if r.Has("signatureType") {
		tx.SignatureType = r.Uint8("signatureType")
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if tx.SignatureType != auth.SingleSignatureID {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSignatureType, tx.SignatureType)
	}

	if payload, ok := f["data"].(actions.Payload); ok {
		if payload.GetTypeID() != tx.Type {
			return nil, fmt.Errorf("%w: type %d, payload %d", ErrTypeMismatch, tx.Type, payload.GetTypeID())
		}
		tx.Data = payload
		return tx, nil
	}
	data := r.Record("data")
	if err := r.Err(); err != nil {
		return nil, err
	}
	payload, err := actions.Build(tx.Type, data)
	if err != nil {
		return nil, err
	}
	tx.Data = payload
	return tx, nil
}

// packUnsigned packs the nine fields covered by the signature.
func (t *Transaction) packUnsigned() (*codec.Packer, error) {
	if t.Base == nil || t.Data == nil {
		return nil, ErrPayloadMissing
	}
	if t.Data.GetTypeID() != t.Type {
		return nil, fmt.Errorf("%w: type %d, payload %d", ErrTypeMismatch, t.Type, t.Data.GetTypeID())
	}
	p := codec.NewPacker(len(TxFields))
	t.Base.Marshal(p)
	p.PackUint64(uint64(t.Type))
	data := codec.NewPacker(actions.PackerCapacity)
	t.Data.Marshal(data)
	p.PackEncoded(data)
	p.PackBytes(t.Payload)
	p.PackBytes(t.ServiceData)
	p.PackUint64(uint64(t.SignatureType))
	return p, p.Err()
}

// Digest returns the Keccak-256 hash of the unsigned message.
func (t *Transaction) Digest() ([]byte, error) {
	if len(t.digest) > 0 {
		return t.digest, nil
	}
	p, err := t.packUnsigned()
	if err != nil {
		return nil, err
	}
	msg, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(msg), nil
}

func (t *Transaction) marshal(sig *secp256k1.Signature) ([]byte, error) {
	p, err := t.packUnsigned()
	if err != nil {
		return nil, err
	}
	sp := codec.NewPacker(3)
	auth.MarshalSignature(sp, sig)
	p.PackEncoded(sp)
	return p.Bytes()
}

// Sign signs the transaction and returns its 0x encoded wire form. Signing
// again with another signer replaces the previous signature.
func (t *Transaction) Sign(signer Signer) (string, error) {
	if t.state == decoded {
		return "", ErrNotSignable
	}
	if t.SignatureType != auth.SingleSignatureID {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedSignatureType, t.SignatureType)
	}
	t.digest = nil
	digest, err := t.Digest()
	if err != nil {
		return "", err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return "", err
	}
	b, err := t.marshal(sig)
	if err != nil {
		return "", err
	}
	t.Signature = sig
	t.digest = digest
	t.bytes = b
	t.sender = signer.Address()
	t.state = signed
	return t.String(), nil
}

// ParseTx decodes a 0x encoded signed transaction and recovers its sender.
func ParseTx(s string) (*Transaction, error) {
	raw, err := codec.StripPrefix(s, codec.TxPrefix)
	if err != nil {
		return nil, err
	}
	b, err := codec.LoadHex(raw, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	return UnmarshalTx(b)
}

// UnmarshalTx decodes the raw signed encoding of a transaction and recovers
// its sender.
func UnmarshalTx(b []byte) (*Transaction, error) {
	u := codec.NewUnpackerFromBytes(b)
	base, err := UnmarshalBase(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	tx := &Transaction{Base: base}
	tx.Type = u.UnpackUint8()
	data := u.UnpackEncoded()
	tx.Payload = u.UnpackBytes()
	tx.ServiceData = u.UnpackBytes()
	tx.SignatureType = u.UnpackUint8()
	sig := u.UnpackEncoded()
	if err := u.Done(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	if tx.SignatureType != auth.SingleSignatureID {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSignatureType, tx.SignatureType)
	}

	payload, err := actions.Unmarshal(tx.Type, data)
	if err != nil {
		return nil, err
	}
	tx.Data = payload
	signature, err := auth.UnmarshalSignature(sig)
	if err != nil {
		return nil, fmt.Errorf("%w: signatureData: %w", ErrInvalidStructure, err)
	}
	tx.Signature = signature

	// Every field must survive a round trip, otherwise the recovered sender
	// would cover a message other than the one on the wire.
	canonical, err := tx.marshal(signature)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(canonical, b) {
		return nil, ErrNonCanonical
	}

	digest, err := tx.Digest()
	if err != nil {
		return nil, err
	}
	sender, err := auth.Recover(digest, signature)
	if err != nil {
		return nil, err
	}
	tx.digest = digest
	tx.bytes = b
	tx.sender = sender
	tx.state = decoded
	return tx, nil
}

func (t *Transaction) isSigned() bool {
	return t.state == signed || t.state == decoded
}

// checkSigned fails unless t is signed and its fields still encode to the
// signed bytes.
func (t *Transaction) checkSigned() error {
	if !t.isSigned() {
		return ErrTransactionNotSigned
	}
	if t.Signature == nil {
		return ErrModified
	}
	b, err := t.marshal(t.Signature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrModified, err)
	}
	if !bytes.Equal(b, t.bytes) {
		return ErrModified
	}
	return nil
}

// Bytes returns the raw signed encoding, or nil before signing.
func (t *Transaction) Bytes() []byte { return t.bytes }

// String returns the 0x encoded signed transaction, or "" before signing.
func (t *Transaction) String() string {
	if !t.isSigned() {
		return ""
	}
	return hexutil.Encode(t.bytes)
}

// Hash returns Mt followed by the first 20 bytes of SHA-256 over the signed
// encoding.
func (t *Transaction) Hash() (string, error) {
	if err := t.checkSigned(); err != nil {
		return "", err
	}
	return codec.AddPrefix(crypto.Sha256(t.bytes)[:HashLen], codec.TxHashPrefix), nil
}

// Fee returns the fee in pip.
func (t *Transaction) Fee() (*uint256.Int, error) {
	if err := t.checkSigned(); err != nil {
		return nil, err
	}
	return fees.Calculate(t.Data.FeeUnits(), len(t.Payload), len(t.ServiceData)), nil
}

// Sender is the signer's address.
func (t *Transaction) Sender() (codec.Address, error) {
	if err := t.checkSigned(); err != nil {
		return codec.EmptyAddress, err
	}
	return t.sender, nil
}

// Fields returns the semantic view of the transaction. Signed and decoded
// transactions also carry signatureData and from.
func (t *Transaction) Fields() codec.Fields {
	f := codec.Fields{
		"type":          t.Type,
		"payload":       string(t.Payload),
		"serviceData":   string(t.ServiceData),
		"signatureType": t.SignatureType,
	}
	if t.Base != nil {
		f["nonce"] = t.Base.Nonce
		f["chainId"] = t.Base.ChainID
		f["gasPrice"] = t.Base.GasPrice
		f["gasCoin"] = t.Base.GasCoin
	}
	if t.Data != nil {
		f["data"] = t.Data.Fields()
	}
	if t.isSigned() {
		f["signatureData"] = codec.Fields{
			"v": t.Signature.V,
			"r": codec.ToHex(t.Signature.R[:]),
			"s": codec.ToHex(t.Signature.S[:]),
		}
		f["from"] = t.sender.String()
	}
	return f
}
