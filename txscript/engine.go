// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txscript implements the transparent-pool script interpreter
// that runs for every transparent input at block acceptance: a two-phase
// stack machine (signature script, then pubkey script) with a conditional
// third phase that re-runs a P2SH redeem script, plus the opcode table
// and sigops counters the block/tx acceptors consult directly.
//
// The opcode set covers what the standard P2PKH/P2SH/bare-multisig/CLTV/
// CSV templates use, with IF/NOTIF/ELSE/ENDIF control flow, rather than
// the full historical Bitcoin Script grammar.
package txscript

// opCondTrue, opCondFalse, and opCondSkip track OP_IF/OP_NOTIF/OP_ELSE
// nesting: Skip marks a branch whose enclosing condition already failed,
// so nested IFs inside it must not flip back to true on their own ELSE.
type opCond int8

const (
	opCondTrue opCond = iota
	opCondFalse
	opCondSkip
)

// Engine evaluates a signature script against a public-key script for one
// transaction input.
type Engine struct {
	sigScript []byte
	pkScript  []byte
	flags     VerificationFlags
	checker   SignatureChecker

	stack     [][]byte
	altStack  [][]byte
	condStack []opCond

	script        []byte
	lastSeparator int
}

// NewEngine builds an Engine for one transparent input's signature and
// public-key scripts.
func NewEngine(sigScript, pkScript []byte, flags VerificationFlags, checker SignatureChecker) *Engine {
	return &Engine{sigScript: sigScript, pkScript: pkScript, flags: flags, checker: checker}
}

// Execute runs the signature script, then the public-key script over the
// resulting stack, then — if flags.P2SH and pkScript is a P2SH output — a
// third pass over the serialized redeem script the signature script
// pushed last. Returns nil iff no phase fails and the public-key script
// (and, for P2SH, the redeem script) leaves a truthy value on top of the
// stack; the signature script's own top value is not checked.
func (e *Engine) Execute() error {
	if e.flags.P2SH && !IsPushOnlyScript(e.sigScript) {
		return scriptError("signature script is not push-only")
	}

	if err := e.run(e.sigScript); err != nil {
		return err
	}

	isP2SH := e.flags.P2SH && IsPayToScriptHash(e.pkScript)

	var savedStack [][]byte
	if isP2SH {
		savedStack = make([][]byte, len(e.stack))
		copy(savedStack, e.stack)
	}

	if err := e.run(e.pkScript); err != nil {
		return err
	}

	if !e.finalStackIsTrue() {
		return scriptError("script did not evaluate to true")
	}

	if !isP2SH {
		return nil
	}

	if len(savedStack) == 0 {
		return scriptError("P2SH signature script is empty")
	}
	redeemScript := savedStack[len(savedStack)-1]
	e.stack = savedStack[:len(savedStack)-1]

	if err := e.run(redeemScript); err != nil {
		return err
	}
	if !e.finalStackIsTrue() {
		return scriptError("P2SH redeem script did not evaluate to true")
	}
	return nil
}

func (e *Engine) finalStackIsTrue() bool {
	if len(e.stack) == 0 {
		return false
	}
	return asBool(e.stack[len(e.stack)-1])
}

// run resets the conditional-execution and code-separator state (each
// script phase is its own execution context) and interprets s.
func (e *Engine) run(s []byte) error {
	ops, err := parseScript(s)
	if err != nil {
		return err
	}

	e.script = s
	e.lastSeparator = 0
	e.condStack = e.condStack[:0]

	nonPushOps := 0
	for _, op := range ops {
		executing := e.executing()

		if op.opcode == OP_IF || op.opcode == OP_NOTIF {
			nonPushOps++
			cond := opCondFalse
			if executing {
				branch := op.opcode == OP_IF
				v, err := e.popBool()
				if err != nil {
					return err
				}
				if v == branch {
					cond = opCondTrue
				}
			} else {
				cond = opCondSkip
			}
			e.condStack = append(e.condStack, cond)
			continue
		}
		if op.opcode == OP_ELSE {
			if len(e.condStack) == 0 {
				return scriptError("OP_ELSE without matching OP_IF")
			}
			top := len(e.condStack) - 1
			switch e.condStack[top] {
			case opCondTrue:
				e.condStack[top] = opCondFalse
			case opCondFalse:
				e.condStack[top] = opCondTrue
			}
			continue
		}
		if op.opcode == OP_ENDIF {
			if len(e.condStack) == 0 {
				return scriptError("OP_ENDIF without matching OP_IF")
			}
			e.condStack = e.condStack[:len(e.condStack)-1]
			continue
		}

		if !executing {
			continue
		}

		if op.data == nil && op.opcode > OP_16 {
			nonPushOps++
			if nonPushOps > MaxOpsPerScript {
				return scriptError("script exceeds max operation count")
			}
		}

		if err := e.step(op); err != nil {
			return err
		}
	}

	if len(e.condStack) != 0 {
		return scriptError("unbalanced OP_IF/OP_ENDIF")
	}
	return nil
}

func (e *Engine) executing() bool {
	for _, c := range e.condStack {
		if c != opCondTrue {
			return false
		}
	}
	return true
}

func (e *Engine) push(v []byte) {
	e.stack = append(e.stack, v)
}

func (e *Engine) pop() ([]byte, error) {
	if len(e.stack) == 0 {
		return nil, scriptError("stack underflow")
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, nil
}

func (e *Engine) peek() ([]byte, error) {
	if len(e.stack) == 0 {
		return nil, scriptError("stack underflow")
	}
	return e.stack[len(e.stack)-1], nil
}

func (e *Engine) popBool() (bool, error) {
	v, err := e.pop()
	if err != nil {
		return false, err
	}
	return asBool(v), nil
}

func (e *Engine) popInt(maxLen int) (scriptNum, error) {
	v, err := e.pop()
	if err != nil {
		return 0, err
	}
	return makeScriptNum(v, true, maxLen)
}

// asBool applies Bitcoin-derived script's boolean interpretation: false
// iff the value is empty or entirely zero bytes, allowing a single
// trailing 0x80 ("negative zero") as another false encoding.
func asBool(v []byte) bool {
	for i, b := range v {
		if b != 0 {
			if i == len(v)-1 && b == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}

// step executes a single already-gated (executing, within-count) opcode.
func (e *Engine) step(op parsedOp) error {
	switch {
	case op.opcode >= OP_DATA_1 && op.opcode <= OP_DATA_75,
		op.opcode == OP_PUSHDATA1, op.opcode == OP_PUSHDATA2, op.opcode == OP_PUSHDATA4:
		if len(op.data) > MaxScriptElementSize {
			return scriptError("pushed element is %d bytes, max %d", len(op.data), MaxScriptElementSize)
		}
		e.push(op.data)
		return nil
	case isSmallInt(op.opcode):
		e.push(scriptNum(asSmallInt(op.opcode)).Bytes())
		return nil
	}

	switch op.opcode {
	case OP_NOP, OP_NOP1:
		return nil
	case OP_VERIFY:
		ok, err := e.popBool()
		if err != nil {
			return err
		}
		if !ok {
			return scriptError("OP_VERIFY failed")
		}
		return nil
	case OP_RETURN:
		return scriptError("OP_RETURN encountered")
	case OP_TOALTSTACK:
		v, err := e.pop()
		if err != nil {
			return err
		}
		e.altStack = append(e.altStack, v)
		return nil
	case OP_FROMALTSTACK:
		if len(e.altStack) == 0 {
			return scriptError("alt stack underflow")
		}
		v := e.altStack[len(e.altStack)-1]
		e.altStack = e.altStack[:len(e.altStack)-1]
		e.push(v)
		return nil
	case OP_2DROP:
		if _, err := e.pop(); err != nil {
			return err
		}
		_, err := e.pop()
		return err
	case OP_2DUP:
		if len(e.stack) < 2 {
			return scriptError("stack underflow")
		}
		a, b := e.stack[len(e.stack)-2], e.stack[len(e.stack)-1]
		e.push(a)
		e.push(b)
		return nil
	case OP_DEPTH:
		e.push(scriptNum(len(e.stack)).Bytes())
		return nil
	case OP_DROP:
		_, err := e.pop()
		return err
	case OP_DUP:
		v, err := e.peek()
		if err != nil {
			return err
		}
		e.push(v)
		return nil
	case OP_SWAP:
		if len(e.stack) < 2 {
			return scriptError("stack underflow")
		}
		n := len(e.stack)
		e.stack[n-1], e.stack[n-2] = e.stack[n-2], e.stack[n-1]
		return nil
	case OP_SIZE:
		v, err := e.peek()
		if err != nil {
			return err
		}
		e.push(scriptNum(len(v)).Bytes())
		return nil
	case OP_EQUAL, OP_EQUALVERIFY:
		a, err := e.pop()
		if err != nil {
			return err
		}
		b, err := e.pop()
		if err != nil {
			return err
		}
		equal := bytesEqual(a, b)
		if op.opcode == OP_EQUALVERIFY {
			if !equal {
				return scriptError("OP_EQUALVERIFY failed")
			}
			return nil
		}
		e.push(boolBytes(equal))
		return nil
	case OP_1ADD, OP_1SUB:
		n, err := e.popInt(defaultScriptNumLen)
		if err != nil {
			return err
		}
		if op.opcode == OP_1ADD {
			n++
		} else {
			n--
		}
		e.push(n.Bytes())
		return nil
	case OP_WITHIN:
		max, err := e.popInt(defaultScriptNumLen)
		if err != nil {
			return err
		}
		min, err := e.popInt(defaultScriptNumLen)
		if err != nil {
			return err
		}
		x, err := e.popInt(defaultScriptNumLen)
		if err != nil {
			return err
		}
		e.push(boolBytes(x >= min && x < max))
		return nil
	case OP_RIPEMD160:
		v, err := e.pop()
		if err != nil {
			return err
		}
		e.push(ripemd160Sum(v))
		return nil
	case OP_SHA256:
		v, err := e.pop()
		if err != nil {
			return err
		}
		e.push(sha256Sum(v))
		return nil
	case OP_HASH160:
		v, err := e.pop()
		if err != nil {
			return err
		}
		e.push(hash160(v))
		return nil
	case OP_HASH256:
		v, err := e.pop()
		if err != nil {
			return err
		}
		e.push(doubleSha256Sum(v))
		return nil
	case OP_CODESEPARATOR:
		e.lastSeparator = e.opPositionAfterSeparator()
		return nil
	case OP_CHECKSIG, OP_CHECKSIGVERIFY:
		return e.checkSig(op.opcode == OP_CHECKSIGVERIFY)
	case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return e.checkMultiSig(op.opcode == OP_CHECKMULTISIGVERIFY)
	case OP_CHECKLOCKTIMEVERIFY:
		return e.checkLockTimeVerify()
	case OP_CHECKSEQUENCEVERIFY:
		return e.checkSequenceVerify()
	case OP_CHECKSIGALT, OP_CHECKSIGALTVERIFY:
		return scriptError("OP_CHECKSIGALT is not supported")
	default:
		return scriptError("unsupported opcode %s", opcodeName(op.opcode))
	}
}

// opPositionAfterSeparator is a placeholder hook for scripts containing
// OP_CODESEPARATOR: sub-script derivation for the signed message is keyed
// off the raw script bytes, not executed-instruction position, so no
// separate bookkeeping beyond "whole script" is needed for the standard
// templates this engine targets (none of which use OP_CODESEPARATOR).
func (e *Engine) opPositionAfterSeparator() int { return 0 }

func (e *Engine) checkSig(verify bool) error {
	pubKey, err := e.pop()
	if err != nil {
		return err
	}
	sig, err := e.pop()
	if err != nil {
		return err
	}

	ok, verr := e.checker.CheckSig(sig, pubKey, e.subScript(), 0)
	if verr != nil && e.flags.StrictEnc {
		return verr
	}
	if verify {
		if !ok {
			return scriptError("OP_CHECKSIGVERIFY failed")
		}
		return nil
	}
	e.push(boolBytes(ok))
	return nil
}

func (e *Engine) checkMultiSig(verify bool) error {
	numPubKeys, err := e.popInt(defaultScriptNumLen)
	if err != nil {
		return err
	}
	if numPubKeys < 0 || numPubKeys > MaxPubKeysPerMultiSig {
		return scriptError("invalid pubkey count %d", numPubKeys)
	}
	pubKeys := make([][]byte, numPubKeys)
	for i := range pubKeys {
		v, err := e.pop()
		if err != nil {
			return err
		}
		pubKeys[i] = v
	}

	numSigs, err := e.popInt(defaultScriptNumLen)
	if err != nil {
		return err
	}
	if numSigs < 0 || numSigs > numPubKeys {
		return scriptError("invalid signature count %d", numSigs)
	}
	sigs := make([][]byte, numSigs)
	for i := range sigs {
		v, err := e.pop()
		if err != nil {
			return err
		}
		sigs[i] = v
	}

	// The historical off-by-one dummy element OP_CHECKMULTISIG consumes
	// and never uses.
	dummy, err := e.pop()
	if err != nil {
		return err
	}
	if e.flags.NullDummy && len(dummy) != 0 {
		return scriptError("OP_CHECKMULTISIG dummy element is not empty")
	}

	subScript := e.subScript()
	sigIdx, pubIdx := 0, 0
	success := true
	for sigIdx < len(sigs) {
		if pubIdx >= len(pubKeys) {
			success = false
			break
		}
		ok, verr := e.checker.CheckSig(sigs[sigIdx], pubKeys[pubIdx], subScript, 0)
		if verr != nil && e.flags.StrictEnc {
			return verr
		}
		if ok {
			sigIdx++
		}
		pubIdx++
	}

	if verify {
		if !success {
			return scriptError("OP_CHECKMULTISIGVERIFY failed")
		}
		return nil
	}
	e.push(boolBytes(success))
	return nil
}

func (e *Engine) checkLockTimeVerify() error {
	if !e.flags.CheckLockTimeVerify {
		return nil
	}
	v, err := e.peek()
	if err != nil {
		return err
	}
	n, err := makeScriptNum(v, true, 5)
	if err != nil {
		return err
	}
	if n < 0 {
		return scriptError("negative locktime")
	}
	if !e.checker.CheckLockTime(n) {
		return scriptError("unsatisfied locktime")
	}
	return nil
}

func (e *Engine) checkSequenceVerify() error {
	if !e.flags.CheckSequenceVerify {
		return nil
	}
	v, err := e.peek()
	if err != nil {
		return err
	}
	n, err := makeScriptNum(v, true, 5)
	if err != nil {
		return err
	}
	if n < 0 {
		return scriptError("negative sequence")
	}
	if n&sequenceLockTimeDisabled == 0 && !e.checker.CheckSequence(n) {
		return scriptError("unsatisfied relative locktime")
	}
	return nil
}

// subScript returns the currently-executing script in full, the signed
// sub-script OP_CHECKSIG/OP_CHECKMULTISIG hash over. OP_CODESEPARATOR
// does not move its start: opPositionAfterSeparator always yields 0.
func (e *Engine) subScript() []byte {
	return e.script[e.lastSeparator:]
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func boolBytes(b bool) []byte {
	if b {
		return []byte{1}
	}
	return nil
}
