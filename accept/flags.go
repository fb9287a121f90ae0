package accept

import (
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/txscript"
)

// ScriptVerificationFlags derives the per-input script verification flags
// in force at height, mined at blockTime, from params' soft-fork
// activation points. P2SH gates on the block's own timestamp; every
// other flag gates on height. StrictEnc and NullDummy are held
// permanently off: neither rule was ever activated on this network.
func ScriptVerificationFlags(params *chaincfg.Params, height int64, blockTime int64) txscript.VerificationFlags {
	return txscript.VerificationFlags{
		P2SH:                blockTime >= params.BIP16Time,
		StrictEnc:           false,
		DERSig:              height >= params.BIP66Height,
		NullDummy:           false,
		CheckLockTimeVerify: height >= params.BIP65Height,
		CheckSequenceVerify: csvActive(params, height),
	}
}

// csvActive reports whether BIP68/112/113 relative-locktime rules are in
// force at height; a zero CSVHeight means the network never activates them.
func csvActive(params *chaincfg.Params, height int64) bool {
	return params.CSVHeight != 0 && height >= params.CSVHeight
}
