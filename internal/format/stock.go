package format

// StockTier is an ordered classification of a stock count.
type StockTier int

const (
	StockOut StockTier = iota
	StockLow
	StockNormal
	StockHigh
)

const (
	lowStockMax    = 5
	normalStockMax = 20
)

// StockLevel is a tier together with its label and display class.
type StockLevel struct {
	Tier  StockTier
	Text  string
	Class string
}

var stockLevels = map[StockTier]StockLevel{
	StockOut:    {Tier: StockOut, Text: "Esgotado", Class: "text-danger"},
	StockLow:    {Tier: StockLow, Text: "Baixo", Class: "text-warning"},
	StockNormal: {Tier: StockNormal, Text: "Normal", Class: "text-info"},
	StockHigh:   {Tier: StockHigh, Text: "Alto", Class: "text-success"},
}

func (t StockTier) String() string {
	if level, ok := stockLevels[t]; ok {
		return level.Text
	}
	return "Unknown"
}

// ClassifyStock maps a stock count to its tier. Negative counts are out of stock.
func ClassifyStock(stock int) StockTier {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= lowStockMax:
		return StockLow
	case stock <= normalStockMax:
		return StockNormal
	default:
		return StockHigh
	}
}

// StockStatus returns the label and display class for a stock count.
func StockStatus(stock int) StockLevel {
	return stockLevels[ClassifyStock(stock)]
}

// Out reports the sold-out tier.
func (l StockLevel) Out() bool {
	return l.Tier == StockOut
}

// Low reports the low tier; sold-out is not low.
func (l StockLevel) Low() bool {
	return l.Tier == StockLow
}
