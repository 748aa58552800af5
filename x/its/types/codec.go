package types

import (
	"encoding/binary"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// HubMessageType is the outer discriminant: traffic is always framed as a
// request to, or a delivery from, the hub.
type HubMessageType byte

const (
	HubMessageSendToHub HubMessageType = iota
	HubMessageReceiveFromHub
)

// HubMessage is the sum { SendToHub{destination_chain, message} |
// ReceiveFromHub{source_chain, message} } framed over the gateway.
type HubMessage struct {
	Type    HubMessageType
	Chain   string // destination_chain for SendToHub, source_chain for ReceiveFromHub
	Message InnerMessage
}

// InnerMessageType is the inner discriminant carried inside a HubMessage.
type InnerMessageType byte

const (
	InnerMessageInterchainTransfer InnerMessageType = iota
	InnerMessageDeployInterchainToken
)

// InnerMessage is the sum { InterchainTransfer{...} |
// DeployInterchainToken{...} }.
type InnerMessage struct {
	Type InnerMessageType

	// InterchainTransfer fields.
	TokenID            [32]byte
	SourceAddress      []byte
	DestinationAddress []byte
	Amount             sdkmath.Int
	Data               []byte // nil means absent

	// DeployInterchainToken fields (TokenID shared above).
	Name     string
	Symbol   string
	Decimals uint8
	Minter   []byte // nil means absent
}

// Encode produces the byte-exact wire encoding HubMessage payloads must
// share across chains so that payload hashes match.
func (m HubMessage) Encode() []byte {
	out := []byte{byte(m.Type)}
	out = append(out, encodeBytes([]byte(m.Chain))...)
	out = append(out, m.Message.encode()...)
	return out
}

// DecodeHubMessage parses the wire encoding produced by Encode.
func DecodeHubMessage(bz []byte) (HubMessage, error) {
	if len(bz) < 1 {
		return HubMessage{}, ErrInsufficientMessageLength
	}
	typ := HubMessageType(bz[0])
	if typ != HubMessageSendToHub && typ != HubMessageReceiveFromHub {
		return HubMessage{}, ErrInvalidMessageType
	}

	rest := bz[1:]
	chain, rest, err := decodeBytes(rest)
	if err != nil {
		return HubMessage{}, err
	}
	inner, err := decodeInnerMessage(rest)
	if err != nil {
		return HubMessage{}, err
	}
	return HubMessage{Type: typ, Chain: string(chain), Message: inner}, nil
}

func (m InnerMessage) encode() []byte {
	out := []byte{byte(m.Type)}
	switch m.Type {
	case InnerMessageInterchainTransfer:
		out = append(out, m.TokenID[:]...)
		out = append(out, encodeBytes(m.SourceAddress)...)
		out = append(out, encodeBytes(m.DestinationAddress)...)
		out = append(out, leftPad32Int(m.Amount)...)
		out = append(out, encodeOptionalBytes(m.Data)...)
	case InnerMessageDeployInterchainToken:
		out = append(out, m.TokenID[:]...)
		out = append(out, encodeBytes([]byte(m.Name))...)
		out = append(out, encodeBytes([]byte(m.Symbol))...)
		out = append(out, m.Decimals)
		out = append(out, encodeOptionalBytes(m.Minter)...)
	}
	return out
}

func decodeInnerMessage(bz []byte) (InnerMessage, error) {
	if len(bz) < 1 {
		return InnerMessage{}, ErrInsufficientMessageLength
	}
	typ := InnerMessageType(bz[0])
	rest := bz[1:]

	switch typ {
	case InnerMessageInterchainTransfer:
		if len(rest) < 32 {
			return InnerMessage{}, ErrInsufficientMessageLength
		}
		var tokenID [32]byte
		copy(tokenID[:], rest[:32])
		rest = rest[32:]

		sourceAddr, rest, err := decodeBytes(rest)
		if err != nil {
			return InnerMessage{}, err
		}
		destAddr, rest, err := decodeBytes(rest)
		if err != nil {
			return InnerMessage{}, err
		}
		if len(rest) < 32 {
			return InnerMessage{}, ErrInsufficientMessageLength
		}
		amount := sdkmath.NewIntFromBigInt(new(big.Int).SetBytes(rest[:32]))
		rest = rest[32:]

		data, _, err := decodeOptionalBytes(rest)
		if err != nil {
			return InnerMessage{}, err
		}
		return InnerMessage{
			Type:               typ,
			TokenID:            tokenID,
			SourceAddress:      sourceAddr,
			DestinationAddress: destAddr,
			Amount:             amount,
			Data:               data,
		}, nil

	case InnerMessageDeployInterchainToken:
		if len(rest) < 32 {
			return InnerMessage{}, ErrInsufficientMessageLength
		}
		var tokenID [32]byte
		copy(tokenID[:], rest[:32])
		rest = rest[32:]

		name, rest, err := decodeBytes(rest)
		if err != nil {
			return InnerMessage{}, err
		}
		symbol, rest, err := decodeBytes(rest)
		if err != nil {
			return InnerMessage{}, err
		}
		if len(rest) < 1 {
			return InnerMessage{}, ErrInsufficientMessageLength
		}
		decimals := rest[0]
		rest = rest[1:]

		minter, _, err := decodeOptionalBytes(rest)
		if err != nil {
			return InnerMessage{}, err
		}
		return InnerMessage{
			Type:     typ,
			TokenID:  tokenID,
			Name:     string(name),
			Symbol:   string(symbol),
			Decimals: decimals,
			Minter:   minter,
		}, nil
	}

	return InnerMessage{}, ErrInvalidMessageType
}

func encodeBytes(b []byte) []byte {
	out := make([]byte, 4+len(b))
	binary.BigEndian.PutUint32(out[:4], uint32(len(b)))
	copy(out[4:], b)
	return out
}

func decodeBytes(bz []byte) ([]byte, []byte, error) {
	if len(bz) < 4 {
		return nil, nil, ErrInsufficientMessageLength
	}
	n := binary.BigEndian.Uint32(bz[:4])
	bz = bz[4:]
	if uint64(len(bz)) < uint64(n) {
		return nil, nil, ErrInsufficientMessageLength
	}
	return bz[:n], bz[n:], nil
}

// encodeOptionalBytes prefixes a presence byte so that "absent" and
// "present but empty" are distinguishable on the wire.
func encodeOptionalBytes(b []byte) []byte {
	if b == nil {
		return []byte{0x00}
	}
	return append([]byte{0x01}, encodeBytes(b)...)
}

func decodeOptionalBytes(bz []byte) ([]byte, []byte, error) {
	if len(bz) < 1 {
		return nil, nil, ErrInsufficientMessageLength
	}
	present := bz[0]
	rest := bz[1:]
	if present == 0 {
		return nil, rest, nil
	}
	return decodeBytes(rest)
}

func leftPad32Int(i sdkmath.Int) []byte {
	out := make([]byte, 32)
	if i.IsNil() {
		return out
	}
	b := i.BigInt().Bytes()
	copy(out[32-len(b):], b)
	return out
}
