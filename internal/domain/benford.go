package domain

// BenfordPoint is one leading digit's observed frequency against the Benford
// reference distribution.
type BenfordPoint struct {
	Digit           int     `json:"digit"`
	ObservedPercent float64 `json:"observed_percent"`
	ExpectedPercent float64 `json:"expected_percent"`
}

// BenfordExpected is the reference distribution for leading digits 1-9.
var BenfordExpected = [9]float64{30.1, 17.6, 12.5, 9.7, 7.9, 6.7, 5.8, 5.1, 4.6}
