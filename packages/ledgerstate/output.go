package ledgerstate

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
)

// region UnlockConditionType //////////////////////////////////////////////////////////////////////////////////////////

const (
	// AddressUnlockConditionType represents the type of an UnlockCondition that ties an Output to an owning Address.
	AddressUnlockConditionType UnlockConditionType = iota

	// TimelockUnlockConditionType represents the type of an UnlockCondition that makes an Output unspendable until a
	// point in time is reached.
	TimelockUnlockConditionType

	// ExpirationUnlockConditionType represents the type of an UnlockCondition that hands the spending rights of an
	// Output over to a return Address once a point in time is reached.
	ExpirationUnlockConditionType

	// StorageDepositReturnUnlockConditionType represents the type of an UnlockCondition that requires part of the
	// Outputs funds to be sent back to a depositor when the Output is consumed.
	StorageDepositReturnUnlockConditionType
)

// UnlockConditionType represents the type of an UnlockCondition.
type UnlockConditionType byte

// UnlockConditionTypeFromString parses an UnlockConditionType from its human readable representation.
func UnlockConditionTypeFromString(unlockConditionType string) (UnlockConditionType, error) {
	parsedUnlockConditionType, ok := map[string]UnlockConditionType{
		"AddressUnlockCondition":              AddressUnlockConditionType,
		"TimelockUnlockCondition":             TimelockUnlockConditionType,
		"ExpirationUnlockCondition":           ExpirationUnlockConditionType,
		"StorageDepositReturnUnlockCondition": StorageDepositReturnUnlockConditionType,
	}[unlockConditionType]
	if !ok {
		return 0, errors.Errorf("unsupported UnlockConditionType: %s", unlockConditionType)
	}

	return parsedUnlockConditionType, nil
}

// String returns a human readable representation of the UnlockConditionType.
func (u UnlockConditionType) String() string {
	return [...]string{
		"AddressUnlockCondition",
		"TimelockUnlockCondition",
		"ExpirationUnlockCondition",
		"StorageDepositReturnUnlockCondition",
	}[u]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnlockCondition //////////////////////////////////////////////////////////////////////////////////////////////

// UnlockCondition is the interface for the different kinds of spending restrictions that an Output can carry.
type UnlockCondition interface {
	// Type returns the UnlockConditionType of the UnlockCondition.
	Type() UnlockConditionType

	// Bytes returns a marshaled version of the UnlockCondition.
	Bytes() []byte

	// String returns a human readable version of the UnlockCondition.
	String() string
}

// UnlockConditionFromMarshalUtil unmarshals an UnlockCondition using a MarshalUtil (for easier unmarshaling).
func UnlockConditionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlockCondition UnlockCondition, err error) {
	unlockConditionType, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse UnlockConditionType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	marshalUtil.ReadSeek(-1)

	switch UnlockConditionType(unlockConditionType) {
	case AddressUnlockConditionType:
		return AddressUnlockConditionFromMarshalUtil(marshalUtil)
	case TimelockUnlockConditionType:
		return TimelockUnlockConditionFromMarshalUtil(marshalUtil)
	case ExpirationUnlockConditionType:
		return ExpirationUnlockConditionFromMarshalUtil(marshalUtil)
	case StorageDepositReturnUnlockConditionType:
		return StorageDepositReturnUnlockConditionFromMarshalUtil(marshalUtil)
	default:
		err = errors.Errorf("unsupported UnlockConditionType (%X): %w", unlockConditionType, cerrors.ErrParseBytesFailed)
		return
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AddressUnlockCondition ///////////////////////////////////////////////////////////////////////////////////////

// AddressUnlockCondition ties an Output to the Address that is allowed to spend it.
type AddressUnlockCondition struct {
	address Address
}

// NewAddressUnlockCondition is the constructor for AddressUnlockCondition objects.
func NewAddressUnlockCondition(address Address) *AddressUnlockCondition {
	return &AddressUnlockCondition{
		address: address,
	}
}

// AddressUnlockConditionFromMarshalUtil unmarshals an AddressUnlockCondition using a MarshalUtil.
func AddressUnlockConditionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlockCondition *AddressUnlockCondition, err error) {
	unlockConditionType, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse UnlockConditionType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockConditionType(unlockConditionType) != AddressUnlockConditionType {
		err = errors.Errorf("invalid UnlockConditionType (%X): %w", unlockConditionType, cerrors.ErrParseBytesFailed)
		return
	}

	unlockCondition = &AddressUnlockCondition{}
	if unlockCondition.address, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse Address from MarshalUtil: %w", err)
		return
	}

	return
}

// Address returns the Address that is allowed to spend the Output.
func (a *AddressUnlockCondition) Address() Address {
	return a.address
}

// Type returns the UnlockConditionType of the UnlockCondition.
func (a *AddressUnlockCondition) Type() UnlockConditionType {
	return AddressUnlockConditionType
}

// Bytes returns a marshaled version of the UnlockCondition.
func (a *AddressUnlockCondition) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(AddressUnlockConditionType)).
		WriteBytes(a.address.Bytes()).
		Bytes()
}

// String returns a human readable version of the UnlockCondition.
func (a *AddressUnlockCondition) String() string {
	return stringify.Struct("AddressUnlockCondition",
		stringify.StructField("address", a.address),
	)
}

// code contract (make sure the type implements all required methods)
var _ UnlockCondition = &AddressUnlockCondition{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TimelockUnlockCondition //////////////////////////////////////////////////////////////////////////////////////

// TimelockUnlockCondition makes an Output unspendable until its timestamp is reached. An Output whose timestamp equals
// the reference time is no longer locked.
type TimelockUnlockCondition struct {
	timelock time.Time
}

// NewTimelockUnlockCondition is the constructor for TimelockUnlockCondition objects.
func NewTimelockUnlockCondition(timelock time.Time) *TimelockUnlockCondition {
	return &TimelockUnlockCondition{
		timelock: timelock.Truncate(time.Second),
	}
}

// TimelockUnlockConditionFromMarshalUtil unmarshals a TimelockUnlockCondition using a MarshalUtil.
func TimelockUnlockConditionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlockCondition *TimelockUnlockCondition, err error) {
	unlockConditionType, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse UnlockConditionType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockConditionType(unlockConditionType) != TimelockUnlockConditionType {
		err = errors.Errorf("invalid UnlockConditionType (%X): %w", unlockConditionType, cerrors.ErrParseBytesFailed)
		return
	}

	unlockCondition = &TimelockUnlockCondition{}
	if unlockCondition.timelock, err = marshalUtil.ReadTime(); err != nil {
		err = errors.Errorf("failed to parse timelock (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Timelock returns the point in time until which the Output is locked.
func (t *TimelockUnlockCondition) Timelock() time.Time {
	return t.timelock
}

// LockedAt returns true if the Output is still locked at the given reference time.
func (t *TimelockUnlockCondition) LockedAt(referenceTime time.Time) bool {
	return t.timelock.After(referenceTime)
}

// Type returns the UnlockConditionType of the UnlockCondition.
func (t *TimelockUnlockCondition) Type() UnlockConditionType {
	return TimelockUnlockConditionType
}

// Bytes returns a marshaled version of the UnlockCondition.
func (t *TimelockUnlockCondition) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(TimelockUnlockConditionType)).
		WriteTime(t.timelock).
		Bytes()
}

// String returns a human readable version of the UnlockCondition.
func (t *TimelockUnlockCondition) String() string {
	return stringify.Struct("TimelockUnlockCondition",
		stringify.StructField("timelock", t.timelock),
	)
}

// code contract (make sure the type implements all required methods)
var _ UnlockCondition = &TimelockUnlockCondition{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ExpirationUnlockCondition ////////////////////////////////////////////////////////////////////////////////////

// ExpirationUnlockCondition hands the spending rights of an Output over to its return Address once its timestamp is
// reached. From that moment on the Output is no longer simply owner-spendable.
type ExpirationUnlockCondition struct {
	returnAddress Address
	expiration    time.Time
}

// NewExpirationUnlockCondition is the constructor for ExpirationUnlockCondition objects.
func NewExpirationUnlockCondition(returnAddress Address, expiration time.Time) *ExpirationUnlockCondition {
	return &ExpirationUnlockCondition{
		returnAddress: returnAddress,
		expiration:    expiration.Truncate(time.Second),
	}
}

// ExpirationUnlockConditionFromMarshalUtil unmarshals an ExpirationUnlockCondition using a MarshalUtil.
func ExpirationUnlockConditionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlockCondition *ExpirationUnlockCondition, err error) {
	unlockConditionType, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse UnlockConditionType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockConditionType(unlockConditionType) != ExpirationUnlockConditionType {
		err = errors.Errorf("invalid UnlockConditionType (%X): %w", unlockConditionType, cerrors.ErrParseBytesFailed)
		return
	}

	unlockCondition = &ExpirationUnlockCondition{}
	if unlockCondition.returnAddress, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse return Address from MarshalUtil: %w", err)
		return
	}
	if unlockCondition.expiration, err = marshalUtil.ReadTime(); err != nil {
		err = errors.Errorf("failed to parse expiration (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// ReturnAddress returns the Address that the spending rights are handed over to upon expiration.
func (e *ExpirationUnlockCondition) ReturnAddress() Address {
	return e.returnAddress
}

// Expiration returns the point in time at which the spending rights are handed over.
func (e *ExpirationUnlockCondition) Expiration() time.Time {
	return e.expiration
}

// ExpiredAt returns true if the spending rights have been handed over at the given reference time. An Output whose
// expiration equals the reference time counts as expired.
func (e *ExpirationUnlockCondition) ExpiredAt(referenceTime time.Time) bool {
	return !e.expiration.After(referenceTime)
}

// Type returns the UnlockConditionType of the UnlockCondition.
func (e *ExpirationUnlockCondition) Type() UnlockConditionType {
	return ExpirationUnlockConditionType
}

// Bytes returns a marshaled version of the UnlockCondition.
func (e *ExpirationUnlockCondition) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(ExpirationUnlockConditionType)).
		WriteBytes(e.returnAddress.Bytes()).
		WriteTime(e.expiration).
		Bytes()
}

// String returns a human readable version of the UnlockCondition.
func (e *ExpirationUnlockCondition) String() string {
	return stringify.Struct("ExpirationUnlockCondition",
		stringify.StructField("returnAddress", e.returnAddress),
		stringify.StructField("expiration", e.expiration),
	)
}

// code contract (make sure the type implements all required methods)
var _ UnlockCondition = &ExpirationUnlockCondition{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region StorageDepositReturnUnlockCondition //////////////////////////////////////////////////////////////////////////

// StorageDepositReturnUnlockCondition requires part of the Outputs funds to be sent back to a depositor when the
// Output is consumed, which disqualifies the Output from unconditional aggregation.
type StorageDepositReturnUnlockCondition struct {
	returnAddress Address
	amount        uint64
}

// NewStorageDepositReturnUnlockCondition is the constructor for StorageDepositReturnUnlockCondition objects.
func NewStorageDepositReturnUnlockCondition(returnAddress Address, amount uint64) *StorageDepositReturnUnlockCondition {
	return &StorageDepositReturnUnlockCondition{
		returnAddress: returnAddress,
		amount:        amount,
	}
}

// StorageDepositReturnUnlockConditionFromMarshalUtil unmarshals a StorageDepositReturnUnlockCondition using a
// MarshalUtil.
func StorageDepositReturnUnlockConditionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlockCondition *StorageDepositReturnUnlockCondition, err error) {
	unlockConditionType, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse UnlockConditionType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockConditionType(unlockConditionType) != StorageDepositReturnUnlockConditionType {
		err = errors.Errorf("invalid UnlockConditionType (%X): %w", unlockConditionType, cerrors.ErrParseBytesFailed)
		return
	}

	unlockCondition = &StorageDepositReturnUnlockCondition{}
	if unlockCondition.returnAddress, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse return Address from MarshalUtil: %w", err)
		return
	}
	if unlockCondition.amount, err = marshalUtil.ReadUint64(); err != nil {
		err = errors.Errorf("failed to parse deposit amount (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// ReturnAddress returns the Address of the depositor.
func (s *StorageDepositReturnUnlockCondition) ReturnAddress() Address {
	return s.returnAddress
}

// Amount returns the amount that has to be returned to the depositor.
func (s *StorageDepositReturnUnlockCondition) Amount() uint64 {
	return s.amount
}

// Type returns the UnlockConditionType of the UnlockCondition.
func (s *StorageDepositReturnUnlockCondition) Type() UnlockConditionType {
	return StorageDepositReturnUnlockConditionType
}

// Bytes returns a marshaled version of the UnlockCondition.
func (s *StorageDepositReturnUnlockCondition) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(StorageDepositReturnUnlockConditionType)).
		WriteBytes(s.returnAddress.Bytes()).
		WriteUint64(s.amount).
		Bytes()
}

// String returns a human readable version of the UnlockCondition.
func (s *StorageDepositReturnUnlockCondition) String() string {
	return stringify.Struct("StorageDepositReturnUnlockCondition",
		stringify.StructField("returnAddress", s.returnAddress),
		stringify.StructField("amount", s.amount),
	)
}

// code contract (make sure the type implements all required methods)
var _ UnlockCondition = &StorageDepositReturnUnlockCondition{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnlockConditions /////////////////////////////////////////////////////////////////////////////////////////////

// UnlockConditions is a collection of UnlockConditions carried by an Output.
type UnlockConditions []UnlockCondition

// UnlockConditionsFromMarshalUtil unmarshals UnlockConditions using a MarshalUtil (for easier unmarshaling).
func UnlockConditionsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlockConditions UnlockConditions, err error) {
	unlockConditionCount, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse UnlockCondition count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	unlockConditions = make(UnlockConditions, unlockConditionCount)
	for i := range unlockConditions {
		if unlockConditions[i], err = UnlockConditionFromMarshalUtil(marshalUtil); err != nil {
			err = errors.Errorf("failed to parse UnlockCondition from MarshalUtil: %w", err)
			return
		}
	}

	return
}

// Address returns the AddressUnlockCondition if one is present.
func (u UnlockConditions) Address() *AddressUnlockCondition {
	for _, unlockCondition := range u {
		if casted, ok := unlockCondition.(*AddressUnlockCondition); ok {
			return casted
		}
	}

	return nil
}

// Timelock returns the TimelockUnlockCondition if one is present.
func (u UnlockConditions) Timelock() *TimelockUnlockCondition {
	for _, unlockCondition := range u {
		if casted, ok := unlockCondition.(*TimelockUnlockCondition); ok {
			return casted
		}
	}

	return nil
}

// Expiration returns the ExpirationUnlockCondition if one is present.
func (u UnlockConditions) Expiration() *ExpirationUnlockCondition {
	for _, unlockCondition := range u {
		if casted, ok := unlockCondition.(*ExpirationUnlockCondition); ok {
			return casted
		}
	}

	return nil
}

// StorageDepositReturn returns the StorageDepositReturnUnlockCondition if one is present.
func (u UnlockConditions) StorageDepositReturn() *StorageDepositReturnUnlockCondition {
	for _, unlockCondition := range u {
		if casted, ok := unlockCondition.(*StorageDepositReturnUnlockCondition); ok {
			return casted
		}
	}

	return nil
}

// IsTimeLockedAt returns true if a TimelockUnlockCondition prevents spending at the given reference time.
func (u UnlockConditions) IsTimeLockedAt(referenceTime time.Time) bool {
	if timelock := u.Timelock(); timelock != nil {
		return timelock.LockedAt(referenceTime)
	}

	return false
}

// IsExpiredAt returns true if an ExpirationUnlockCondition has handed the spending rights over at the given reference
// time.
func (u UnlockConditions) IsExpiredAt(referenceTime time.Time) bool {
	if expiration := u.Expiration(); expiration != nil {
		return expiration.ExpiredAt(referenceTime)
	}

	return false
}

// HasStorageDepositReturn returns true if a StorageDepositReturnUnlockCondition is present.
func (u UnlockConditions) HasStorageDepositReturn() bool {
	return u.StorageDepositReturn() != nil
}

// Bytes returns a marshaled version of the UnlockConditions.
func (u UnlockConditions) Bytes() []byte {
	marshalUtil := marshalutil.New().
		WriteByte(byte(len(u)))
	for _, unlockCondition := range u {
		marshalUtil.WriteBytes(unlockCondition.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the UnlockConditions.
func (u UnlockConditions) String() string {
	structBuilder := stringify.StructBuilder("UnlockConditions")
	for i, unlockCondition := range u {
		structBuilder.AddField(stringify.StructField(strconv.Itoa(i), unlockCondition))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region BasicOutput //////////////////////////////////////////////////////////////////////////////////////////////////

// BasicOutput represents a discrete quantity of base-unit value locked to an owning Address, optionally carrying
// further UnlockConditions.
type BasicOutput struct {
	amount           uint64
	unlockConditions UnlockConditions
}

// NewBasicOutput is the constructor for BasicOutput objects.
func NewBasicOutput(amount uint64, unlockConditions ...UnlockCondition) *BasicOutput {
	return &BasicOutput{
		amount:           amount,
		unlockConditions: unlockConditions,
	}
}

// BasicOutputFromBytes unmarshals a BasicOutput from a sequence of bytes.
func BasicOutputFromBytes(data []byte) (output *BasicOutput, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if output, err = BasicOutputFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse BasicOutput from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BasicOutputFromMarshalUtil unmarshals a BasicOutput using a MarshalUtil (for easier unmarshaling).
func BasicOutputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (output *BasicOutput, err error) {
	output = &BasicOutput{}
	if output.amount, err = marshalUtil.ReadUint64(); err != nil {
		err = errors.Errorf("failed to parse amount (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if output.unlockConditions, err = UnlockConditionsFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse UnlockConditions from MarshalUtil: %w", err)
		return
	}

	return
}

// Amount returns the amount of base units held by the Output.
func (b *BasicOutput) Amount() uint64 {
	return b.amount
}

// UnlockConditions returns the UnlockConditions carried by the Output.
func (b *BasicOutput) UnlockConditions() UnlockConditions {
	return b.unlockConditions
}

// Address returns the owning Address of the Output.
func (b *BasicOutput) Address() (address Address, err error) {
	addressUnlockCondition := b.unlockConditions.Address()
	if addressUnlockCondition == nil {
		err = errors.New("output carries no AddressUnlockCondition")
		return
	}

	return addressUnlockCondition.Address(), nil
}

// Bytes returns a marshaled version of the Output.
func (b *BasicOutput) Bytes() []byte {
	return marshalutil.New().
		WriteUint64(b.amount).
		WriteBytes(b.unlockConditions.Bytes()).
		Bytes()
}

// String returns a human readable version of the Output.
func (b *BasicOutput) String() string {
	return stringify.Struct("BasicOutput",
		stringify.StructField("amount", b.amount),
		stringify.StructField("unlockConditions", b.unlockConditions),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OutputID /////////////////////////////////////////////////////////////////////////////////////////////////////

// OutputIDLength contains the amount of bytes that a marshaled version of the OutputID contains.
const OutputIDLength = TransactionIDLength + marshalutil.Uint16Size

// OutputID is the type that represents the identifier of an Output (the issuing TransactionID plus the index of the
// Output within the Transaction).
type OutputID [OutputIDLength]byte

// NewOutputID is the constructor for OutputID objects.
func NewOutputID(transactionID TransactionID, outputIndex uint16) (outputID OutputID) {
	copy(outputID[:TransactionIDLength], transactionID.Bytes())
	binary.LittleEndian.PutUint16(outputID[TransactionIDLength:], outputIndex)

	return
}

// OutputIDFromBytes unmarshals an OutputID from a sequence of bytes.
func OutputIDFromBytes(data []byte) (outputID OutputID, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if outputID, err = OutputIDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse OutputID from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// OutputIDFromBase58 creates an OutputID from a base58 encoded string.
func OutputIDFromBase58(base58String string) (outputID OutputID, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = errors.Errorf("error while decoding base58 encoded OutputID (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if outputID, _, err = OutputIDFromBytes(decodedBytes); err != nil {
		err = errors.Errorf("failed to parse OutputID from bytes: %w", err)
		return
	}

	return
}

// OutputIDFromMarshalUtil unmarshals an OutputID using a MarshalUtil (for easier unmarshaling).
func OutputIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (outputID OutputID, err error) {
	outputIDBytes, err := marshalUtil.ReadBytes(OutputIDLength)
	if err != nil {
		err = errors.Errorf("failed to parse OutputID (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(outputID[:], outputIDBytes)

	return
}

// TransactionID returns the TransactionID part of an OutputID.
func (o OutputID) TransactionID() (transactionID TransactionID) {
	copy(transactionID[:], o[:TransactionIDLength])

	return
}

// OutputIndex returns the Output index part of an OutputID.
func (o OutputID) OutputIndex() uint16 {
	return binary.LittleEndian.Uint16(o[TransactionIDLength:])
}

// Bytes returns a marshaled version of the OutputID.
func (o OutputID) Bytes() []byte {
	return o[:]
}

// Base58 returns a base58 encoded version of the OutputID.
func (o OutputID) Base58() string {
	return base58.Encode(o[:])
}

// String creates a human readable version of the OutputID.
func (o OutputID) String() string {
	return "OutputID(" + o.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Outputs //////////////////////////////////////////////////////////////////////////////////////////////////////

// Outputs is a collection of BasicOutputs.
type Outputs []*BasicOutput

// OutputsFromMarshalUtil unmarshals Outputs using a MarshalUtil (for easier unmarshaling).
func OutputsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (outputs Outputs, err error) {
	outputCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = errors.Errorf("failed to parse Output count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	outputs = make(Outputs, outputCount)
	for i := range outputs {
		if outputs[i], err = BasicOutputFromMarshalUtil(marshalUtil); err != nil {
			err = errors.Errorf("failed to parse BasicOutput from MarshalUtil: %w", err)
			return
		}
	}

	return
}

// Bytes returns a marshaled version of the Outputs.
func (o Outputs) Bytes() []byte {
	marshalUtil := marshalutil.New().
		WriteUint16(uint16(len(o)))
	for _, output := range o {
		marshalUtil.WriteBytes(output.Bytes())
	}

	return marshalUtil.Bytes()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
