// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package segments

import "fmt"

// Attribute is a bitset of properties attached to a Candidate. Bit
// positions are part of the external ABI and must not be renumbered.
type Attribute uint32

const (
	BestCandidate           Attribute = 1 << 0
	Reranked                Attribute = 1 << 1
	NoHistoryLearning       Attribute = 1 << 2
	NoSuggestLearning       Attribute = 1 << 3
	ContextSensitive        Attribute = 1 << 4
	SpellingCorrection      Attribute = 1 << 5
	NoVariantsExpansion     Attribute = 1 << 6
	NoExtraDescription      Attribute = 1 << 7
	RealtimeConversion      Attribute = 1 << 8
	UserDictionary          Attribute = 1 << 9
	CommandCandidate        Attribute = 1 << 10
	PartiallyKeyConsumed    Attribute = 1 << 11
	TypingCorrection        Attribute = 1 << 12
	AutoPartialSuggestion   Attribute = 1 << 13
	UserHistoryPrediction   Attribute = 1 << 14
	SuffixDictionary        Attribute = 1 << 15
	NoModification          Attribute = 1 << 16
	// NoLearning is the union of the two NO_*_LEARNING bits.
	NoLearning Attribute = NoHistoryLearning | NoSuggestLearning
)

// Has reports whether every bit in want is set in a.
func (a Attribute) Has(want Attribute) bool {
	return a&want == want
}

// SourceInfo is a bitset of provenance flags recorded for telemetry.
type SourceInfo uint32

const (
	SourceDictionaryPredictorZeroQueryNone        SourceInfo = 1 << 0
	SourceDictionaryPredictorZeroQueryNumberSuffix SourceInfo = 1 << 1
	SourceDictionaryPredictorZeroQueryEmoticon    SourceInfo = 1 << 2
	SourceDictionaryPredictorZeroQueryEmoji       SourceInfo = 1 << 3
	SourceDictionaryPredictorZeroQueryBigram      SourceInfo = 1 << 4
	SourceDictionaryPredictorZeroQuerySuffix      SourceInfo = 1 << 5
	SourceUserHistoryPredictor                    SourceInfo = 1 << 6
)

// Has reports whether every bit in want is set in s.
func (s SourceInfo) Has(want SourceInfo) bool {
	return s&want == want
}

// Category is a coarse routing category for a candidate.
type Category int

const (
	CategoryDefault Category = iota
	CategorySymbol
	CategoryOther
)

// Command is a side effect to run when a candidate is submitted.
type Command int

const (
	CommandDefault Command = iota
	CommandEnableIncognito
	CommandDisableIncognito
	CommandEnablePresentation
	CommandDisablePresentation
)

// Style is a numeric formatting style. The concrete set of styles belongs
// to an external number-formatting component; this package only carries
// the value.
type Style int

// InnerSegmentCode packs four byte-lengths (key, value, content-key,
// content-value), each capped at 255, into one 32-bit word, MSB first:
// byte 3 = key length, byte 2 = value length, byte 1 = content-key length,
// byte 0 = content-value length. It is a named type rather than a bare
// uint32 so the overflow contract travels with the value.
type InnerSegmentCode uint32

// EncodeLengths packs the four lengths into an InnerSegmentCode. It
// returns (0, false) if any length exceeds 255, leaving nothing partially
// encoded.
func EncodeLengths(keyLen, valueLen, contentKeyLen, contentValueLen int) (InnerSegmentCode, bool) {
	if keyLen > 255 || valueLen > 255 || contentKeyLen > 255 || contentValueLen > 255 {
		return 0, false
	}
	if keyLen < 0 || valueLen < 0 || contentKeyLen < 0 || contentValueLen < 0 {
		return 0, false
	}
	code := uint32(keyLen)<<24 | uint32(valueLen)<<16 | uint32(contentKeyLen)<<8 | uint32(contentValueLen)
	return InnerSegmentCode(code), true
}

// Decode unpacks the four lengths packed into c.
func (c InnerSegmentCode) Decode() (keyLen, valueLen, contentKeyLen, contentValueLen int) {
	u := uint32(c)
	return int(u >> 24 & 0xff), int(u >> 16 & 0xff), int(u >> 8 & 0xff), int(u & 0xff)
}

// Candidate is a value object describing one possible surface rendering
// for a reading.
type Candidate struct {
	Key             string
	Value           string
	ContentKey      string
	ContentValue    string
	ConsumedKeySize uint32

	Prefix           string
	Suffix           string
	Description      string
	A11yDescription  string

	UsageID          int32
	UsageTitle       string
	UsageDescription string

	Cost               int32
	Wcost              int32
	StructureCost      int32
	CostBeforeRescoring int32

	Lid uint16
	Rid uint16

	Attributes Attribute
	SourceInfo SourceInfo
	Category   Category
	Style      Style
	Command    Command

	innerSegmentBoundary []InnerSegmentCode

	candidateDebug
}

// Clear resets every field to its default: empty strings, zero counters,
// DEFAULT category/command/style, no attributes.
func (c *Candidate) Clear() {
	dbg := c.candidateDebug
	*c = Candidate{}
	dbg.clear()
	c.candidateDebug = dbg
}

// InnerSegmentBoundarySize returns the number of packed codes appended so
// far.
func (c *Candidate) InnerSegmentBoundarySize() int {
	return len(c.innerSegmentBoundary)
}

// InnerSegmentBoundaryAt returns the i-th packed code.
func (c *Candidate) InnerSegmentBoundaryAt(i int) InnerSegmentCode {
	invariant("InnerSegmentBoundaryAt", i >= 0 && i < len(c.innerSegmentBoundary), fmt.Errorf("index %d out of range [0,%d)", i, len(c.innerSegmentBoundary)))
	return c.innerSegmentBoundary[i]
}

// PushBackInnerSegmentBoundary appends one packed code built from the four
// lengths. It returns false (leaving the sequence unchanged) if any length
// exceeds 255.
func (c *Candidate) PushBackInnerSegmentBoundary(keyLen, valueLen, contentKeyLen, contentValueLen int) bool {
	code, ok := EncodeLengths(keyLen, valueLen, contentKeyLen, contentValueLen)
	if !ok {
		return false
	}
	c.innerSegmentBoundary = append(c.innerSegmentBoundary, code)
	return true
}

// ClearInnerSegmentBoundary empties the inner segment boundary sequence.
func (c *Candidate) ClearInnerSegmentBoundary() {
	c.innerSegmentBoundary = nil
}

// FunctionalKey returns the suffix of Key past ContentKey. Empty (never an
// error) if ContentKey is at least as long as Key.
func (c *Candidate) FunctionalKey() string {
	if len(c.ContentKey) >= len(c.Key) {
		return ""
	}
	return c.Key[len(c.ContentKey):]
}

// FunctionalValue returns the suffix of Value past ContentValue. Empty
// (never an error) if ContentValue is at least as long as Value.
func (c *Candidate) FunctionalValue() string {
	if len(c.ContentValue) >= len(c.Value) {
		return ""
	}
	return c.Value[len(c.ContentValue):]
}

// IsValid reports whether the inner segment boundary is empty, or its
// decoded key-lengths sum to len(Key) and its decoded value-lengths sum to
// len(Value). content_key/content_value lengths are not checked.
func (c *Candidate) IsValid() bool {
	if len(c.innerSegmentBoundary) == 0 {
		return true
	}
	var keySum, valueSum int
	for _, code := range c.innerSegmentBoundary {
		kl, vl, _, _ := code.Decode()
		keySum += kl
		valueSum += vl
	}
	return keySum == len(c.Key) && valueSum == len(c.Value)
}

// Validate is IsValid expressed as an error, for callers (the CLI's batch
// validator) that want a wrapped sentinel rather than a bare bool.
func (c *Candidate) Validate() error {
	if !c.IsValid() {
		return fmt.Errorf("%w: key=%q value=%q", ErrInvalidCandidate, c.Key, c.Value)
	}
	return nil
}

// InnerSegmentIterator produces a lazy, forward-only, restartable sequence
// of (key, value, content-key, content-value) views into a candidate's key
// and value, one per packed inner-segment code. It borrows the candidate
// and is invalidated by any mutation of Key, Value, or the inner segment
// boundary.
type InnerSegmentIterator struct {
	c        *Candidate
	idx      int
	keyOff   int
	valueOff int
}

// InnerSegmentIterator returns a fresh iterator positioned before the
// first entry.
func (c *Candidate) InnerSegmentIterator() *InnerSegmentIterator {
	return &InnerSegmentIterator{c: c}
}

// Done reports whether every entry has been consumed.
func (it *InnerSegmentIterator) Done() bool {
	return it.idx >= len(it.c.innerSegmentBoundary)
}

// InnerSegment is one step's view into the candidate's key/value.
type InnerSegment struct {
	Key             string
	Value           string
	ContentKey      string
	ContentValue    string
	FunctionalKey   string
	FunctionalValue string
}

// Next returns the next entry and advances the iterator. Callers must
// check Done first; Next panics via an invariant error if called past the
// end.
func (it *InnerSegmentIterator) Next() InnerSegment {
	invariantf("InnerSegmentIterator.Next", !it.Done(), "no more inner segment entries")
	code := it.c.innerSegmentBoundary[it.idx]
	keyLen, valueLen, contentKeyLen, contentValueLen := code.Decode()

	key := sliceAt(it.c.Key, it.keyOff, keyLen)
	value := sliceAt(it.c.Value, it.valueOff, valueLen)
	contentKey := sliceAt(it.c.Key, it.keyOff, contentKeyLen)
	contentValue := sliceAt(it.c.Value, it.valueOff, contentValueLen)

	seg := InnerSegment{
		Key:          key,
		Value:        value,
		ContentKey:   contentKey,
		ContentValue: contentValue,
	}
	if contentKeyLen < len(key) {
		seg.FunctionalKey = key[contentKeyLen:]
	}
	if contentValueLen < len(value) {
		seg.FunctionalValue = value[contentValueLen:]
	}

	it.keyOff += keyLen
	it.valueOff += valueLen
	it.idx++
	return seg
}

// sliceAt returns up to n bytes of s starting at off, clamped to s's
// length so a malformed boundary never panics on a plain read.
func sliceAt(s string, off, n int) string {
	if off >= len(s) {
		return ""
	}
	end := off + n
	if end > len(s) {
		end = len(s)
	}
	return s[off:end]
}

// DebugString renders a human-readable dump of c. Field ordering and
// inclusion are a debugging aid, not an external contract.
func (c *Candidate) DebugString() string {
	return fmt.Sprintf(
		"Candidate{key=%q value=%q content_key=%q content_value=%q cost=%d wcost=%d attrs=%#x category=%d command=%d inner_segments=%d}",
		c.Key, c.Value, c.ContentKey, c.ContentValue, c.Cost, c.Wcost, uint32(c.Attributes), c.Category, c.Command, len(c.innerSegmentBoundary),
	)
}
