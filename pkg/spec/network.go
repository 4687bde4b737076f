package spec

// Network identifies a card scheme that overlays additional field
// requirements on top of the base ISO8583 schema.
type Network string

// Supported networks, in the closed set this registry understands.
const (
	NetworkNone       Network = ""
	NetworkVisa       Network = "VISA"
	NetworkMastercard Network = "MASTERCARD"
	NetworkAmex       Network = "AMEX"
	NetworkDiscover   Network = "DISCOVER"
	NetworkJCB        Network = "JCB"
	NetworkUnionPay   Network = "UNIONPAY"
)

// panPrefixRule describes one row of the network-detection table: a PAN
// whose digits start with Prefix and whose length is one of Lengths (an
// empty Lengths means "any length") belongs to Network.
type panPrefixRule struct {
	Network  Network
	Prefix   string
	MinRange int // inclusive numeric lower bound of a prefix range, 0 if unused
	MaxRange int // inclusive numeric upper bound of a prefix range, 0 if unused
	RangeLen int // digit count of MinRange/MaxRange when set
	Lengths  []int
}

// panPrefixRules lists the detection rows; DetectNetwork picks the rule
// whose matched prefix is longest, breaking ties by table order.
var panPrefixRules = []panPrefixRule{
	{Network: NetworkVisa, Prefix: "4", Lengths: []int{13, 16, 19}},
	{Network: NetworkMastercard, MinRange: 51, MaxRange: 55, RangeLen: 2, Lengths: []int{16}},
	{Network: NetworkMastercard, MinRange: 2221, MaxRange: 2720, RangeLen: 4, Lengths: []int{16}},
	{Network: NetworkAmex, Prefix: "34", Lengths: []int{15}},
	{Network: NetworkAmex, Prefix: "37", Lengths: []int{15}},
	{Network: NetworkDiscover, Prefix: "6011", Lengths: []int{16, 17, 18, 19}},
	{Network: NetworkDiscover, MinRange: 644, MaxRange: 649, RangeLen: 3, Lengths: []int{16, 17, 18, 19}},
	{Network: NetworkDiscover, Prefix: "65", Lengths: []int{16, 17, 18, 19}},
	{Network: NetworkJCB, MinRange: 3528, MaxRange: 3589, RangeLen: 4, Lengths: []int{16, 17, 18, 19}},
	{Network: NetworkUnionPay, Prefix: "62", Lengths: []int{16, 17, 18, 19}},
}

// DetectNetwork runs prefix-based network detection on a PAN's digits,
// per the table in the card-network overlay design: among the rows
// whose prefix and PAN length match, the longest matching prefix wins,
// and an earlier table row wins between equally long prefixes.
// Returns NetworkNone if no row matches or pan isn't all digits.
func DetectNetwork(pan string) Network {
	for _, c := range pan {
		if c < '0' || c > '9' {
			return NetworkNone
		}
	}

	best := NetworkNone
	bestSpecificity := -1

	for _, rule := range panPrefixRules {
		specificity, ok := rule.match(pan)
		if !ok {
			continue
		}

		if specificity > bestSpecificity {
			best = rule.Network
			bestSpecificity = specificity
		}
	}

	return best
}

func (r panPrefixRule) match(pan string) (specificity int, ok bool) {
	if !r.lengthOK(len(pan)) {
		return 0, false
	}

	if r.Prefix != "" {
		if len(pan) < len(r.Prefix) || pan[:len(r.Prefix)] != r.Prefix {
			return 0, false
		}

		return len(r.Prefix), true
	}

	if r.RangeLen > 0 {
		if len(pan) < r.RangeLen {
			return 0, false
		}

		prefixDigits := pan[:r.RangeLen]

		var val int
		for _, c := range prefixDigits {
			val = val*10 + int(c-'0')
		}

		if val < r.MinRange || val > r.MaxRange {
			return 0, false
		}

		return r.RangeLen, true
	}

	return 0, false
}

func (r panPrefixRule) lengthOK(n int) bool {
	if len(r.Lengths) == 0 {
		return true
	}

	for _, l := range r.Lengths {
		if l == n {
			return true
		}
	}

	return false
}

// requiredFieldsByNetwork is the set of field numbers a network
// overlay requires present on every message, per §4.7's required-field
// table.
var requiredFieldsByNetwork = map[Network][]int{
	NetworkVisa:       {2, 3, 4, 11, 14, 22, 24, 25},
	NetworkMastercard: {2, 3, 4, 11, 22, 24, 25},
	NetworkAmex:       {2, 3, 4, 11, 22, 25},
	NetworkDiscover:   {2, 3, 4, 11, 22},
	NetworkJCB:        {2, 3, 4, 11, 22, 25},
	NetworkUnionPay:   {2, 3, 4, 11, 22, 25, 49},
}

// RequiredFields returns the set of field numbers required for network,
// or nil if the network is unknown or NetworkNone.
func RequiredFields(network Network) []int {
	fields, ok := requiredFieldsByNetwork[network]
	if !ok {
		return nil
	}

	out := make([]int, len(fields))
	copy(out, fields)

	return out
}
