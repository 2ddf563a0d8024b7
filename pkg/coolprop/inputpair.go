package coolprop

// InputPair identifies the two state variables supplied to Update. Like
// Param, the set is closed and unknown tokens never reach the engine. Tokens
// match the engine's string API (for example "PT_INPUTS").
type InputPair int

const (
	PairPT InputPair = iota
	PairQT
	PairPQ
	PairQSmolar
	PairQSmass
	PairHmolarQ
	PairHmassQ
	PairDmolarQ
	PairDmassQ
	PairHmolarP
	PairHmassP
	PairPSmolar
	PairPSmass
	PairPUmolar
	PairPUmass
	PairHmolarSmolar
	PairHmassSmass
	PairSmolarT
	PairSmassT
	PairDmolarT
	PairDmassT
	PairDmolarP
	PairDmassP
	PairDmolarHmolar
	PairDmassHmass
	PairDmolarSmolar
	PairDmassSmass
	PairDmolarUmolar
	PairDmassUmass
	PairHmolarT
	PairHmassT
	PairTUmolar
	PairTUmass

	numInputPairs int = iota
)

var inputPairTokens = [numInputPairs]string{
	PairPT:           "PT_INPUTS",
	PairQT:           "QT_INPUTS",
	PairPQ:           "PQ_INPUTS",
	PairQSmolar:      "QSmolar_INPUTS",
	PairQSmass:       "QSmass_INPUTS",
	PairHmolarQ:      "HmolarQ_INPUTS",
	PairHmassQ:       "HmassQ_INPUTS",
	PairDmolarQ:      "DmolarQ_INPUTS",
	PairDmassQ:       "DmassQ_INPUTS",
	PairHmolarP:      "HmolarP_INPUTS",
	PairHmassP:       "HmassP_INPUTS",
	PairPSmolar:      "PSmolar_INPUTS",
	PairPSmass:       "PSmass_INPUTS",
	PairPUmolar:      "PUmolar_INPUTS",
	PairPUmass:       "PUmass_INPUTS",
	PairHmolarSmolar: "HmolarSmolar_INPUTS",
	PairHmassSmass:   "HmassSmass_INPUTS",
	PairSmolarT:      "SmolarT_INPUTS",
	PairSmassT:       "SmassT_INPUTS",
	PairDmolarT:      "DmolarT_INPUTS",
	PairDmassT:       "DmassT_INPUTS",
	PairDmolarP:      "DmolarP_INPUTS",
	PairDmassP:       "DmassP_INPUTS",
	PairDmolarHmolar: "DmolarHmolar_INPUTS",
	PairDmassHmass:   "DmassHmass_INPUTS",
	PairDmolarSmolar: "DmolarSmolar_INPUTS",
	PairDmassSmass:   "DmassSmass_INPUTS",
	PairDmolarUmolar: "DmolarUmolar_INPUTS",
	PairDmassUmass:   "DmassUmass_INPUTS",
	PairHmolarT:      "HmolarT_INPUTS",
	PairHmassT:       "HmassT_INPUTS",
	PairTUmolar:      "TUmolar_INPUTS",
	PairTUmass:       "TUmass_INPUTS",
}

// InputPairs lists every known input pair in declaration order.
func InputPairs() []InputPair {
	out := make([]InputPair, numInputPairs)
	for i := range out {
		out[i] = InputPair(i)
	}
	return out
}

func (ip InputPair) valid() bool {
	return ip >= 0 && int(ip) < numInputPairs
}

// String returns the engine token for the input pair.
func (ip InputPair) String() string {
	if !ip.valid() {
		return "InputPair(invalid)"
	}
	return inputPairTokens[ip]
}

var inputPairByToken = func() map[string]InputPair {
	m := make(map[string]InputPair, numInputPairs)
	for i, token := range inputPairTokens {
		m[token] = InputPair(i)
	}
	return m
}()

// InputPairFromString resolves an engine token to an InputPair. Unknown
// tokens are a KindInvalidInput error and cause no native call.
func InputPairFromString(token string) (InputPair, error) {
	ip, ok := inputPairByToken[token]
	if !ok {
		return 0, errInvalidInput("unknown input pair %q", token)
	}
	return ip, nil
}
