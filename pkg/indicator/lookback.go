package indicator

// Lookbacks give the length of the warm-up prefix of each indicator. They only
// depend on the parameters, never on the data.

func EMALookback(period int) int { return period - 1 }

func WilderLookback(period int) int { return period - 1 }

func ATRLookback(period int) int { return period - 1 }

func RSILookback(period int) int { return period }

func RSIDivergenceLookback(period, lookback int) int { return period + lookback }

func DILookback(period int) int { return period }

func DXLookback(period int) int { return period }

func ADXLookback(period int) int { return 2*period - 1 }

func ADXRLookback(period int) int { return 3*period - 1 }

func PlusDMLookback() int { return 1 }

func SARLookback() int { return 0 }

func MAMALookback() int { return mamaLookback }
