// Package money defines the static registry of monetary assets: fiat
// currencies and crypto assets. Fiat and crypto live in separate
// backing tables but share one alias lookup, built by pkg/alias.
package money

// Kind distinguishes fiat currencies from crypto assets.
type Kind int

const (
	Fiat Kind = iota
	Crypto
)

func (k Kind) String() string {
	if k == Crypto {
		return "Crypto"
	}
	return "Fiat"
}

// Asset describes one fiat currency or crypto asset. PriceFeedID is
// the identifier the crypto price service knows the asset by; it is
// empty for fiat.
type Asset struct {
	Kind        Kind
	Code        string
	Label       string
	Symbol      string
	PriceFeedID string
	Aliases     []string
}

// FiatAssets returns the fiat currency table.
func FiatAssets() []Asset {
	return fiatAssets
}

// CryptoAssets returns the crypto asset table.
func CryptoAssets() []Asset {
	return cryptoAssets
}

// IsStablecoin reports whether the asset is a designated USD
// stablecoin. Stablecoins default to a USD price of exactly 1 when
// their live price feed fails; they are defined to track USD.
func IsStablecoin(a *Asset) bool {
	if a.Kind != Crypto {
		return false
	}
	return stablecoins[a.Code]
}

var stablecoins = map[string]bool{
	"USDT": true,
	"USDC": true,
	"DAI":  true,
	"BUSD": true,
	"TUSD": true,
}

var fiatAssets = []Asset{
	{Kind: Fiat, Code: "USD", Label: "US Dollar", Symbol: "$", Aliases: []string{"usd", "$", "dollar", "dollars", "us dollar", "us dollars"}},
	{Kind: Fiat, Code: "EUR", Label: "Euro", Symbol: "€", Aliases: []string{"eur", "€", "euro", "euros"}},
	{Kind: Fiat, Code: "GBP", Label: "British Pound", Symbol: "£", Aliases: []string{"gbp", "£", "pound", "pounds", "pound sterling", "quid"}},
	{Kind: Fiat, Code: "JPY", Label: "Japanese Yen", Symbol: "¥", Aliases: []string{"jpy", "¥", "yen"}},
	{Kind: Fiat, Code: "CHF", Label: "Swiss Franc", Symbol: "CHF", Aliases: []string{"chf", "franc", "francs", "swiss franc", "swiss francs"}},
	{Kind: Fiat, Code: "CAD", Label: "Canadian Dollar", Symbol: "C$", Aliases: []string{"cad", "c$", "canadian dollar", "canadian dollars"}},
	{Kind: Fiat, Code: "AUD", Label: "Australian Dollar", Symbol: "A$", Aliases: []string{"aud", "a$", "australian dollar", "australian dollars"}},
	{Kind: Fiat, Code: "NZD", Label: "New Zealand Dollar", Symbol: "NZ$", Aliases: []string{"nzd", "nz$", "new zealand dollar"}},
	{Kind: Fiat, Code: "CNY", Label: "Chinese Yuan", Symbol: "元", Aliases: []string{"cny", "yuan", "rmb", "renminbi"}},
	{Kind: Fiat, Code: "INR", Label: "Indian Rupee", Symbol: "₹", Aliases: []string{"inr", "₹", "rupee", "rupees"}},
	{Kind: Fiat, Code: "KRW", Label: "South Korean Won", Symbol: "₩", Aliases: []string{"krw", "₩", "won"}},
	{Kind: Fiat, Code: "BRL", Label: "Brazilian Real", Symbol: "R$", Aliases: []string{"brl", "r$", "real", "reais"}},
	{Kind: Fiat, Code: "MXN", Label: "Mexican Peso", Symbol: "MX$", Aliases: []string{"mxn", "mx$", "peso", "pesos", "mexican peso", "mexican pesos"}},
	{Kind: Fiat, Code: "SEK", Label: "Swedish Krona", Symbol: "kr", Aliases: []string{"sek", "krona", "kronor", "swedish krona"}},
	{Kind: Fiat, Code: "NOK", Label: "Norwegian Krone", Symbol: "kr", Aliases: []string{"nok", "krone", "kroner", "norwegian krone"}},
	{Kind: Fiat, Code: "DKK", Label: "Danish Krone", Symbol: "kr", Aliases: []string{"dkk", "danish krone"}},
	{Kind: Fiat, Code: "PLN", Label: "Polish Zloty", Symbol: "zł", Aliases: []string{"pln", "zloty", "zlotys"}},
	{Kind: Fiat, Code: "CZK", Label: "Czech Koruna", Symbol: "Kč", Aliases: []string{"czk", "koruna", "czech koruna"}},
	{Kind: Fiat, Code: "TRY", Label: "Turkish Lira", Symbol: "₺", Aliases: []string{"try", "₺", "lira", "turkish lira"}},
	{Kind: Fiat, Code: "RUB", Label: "Russian Ruble", Symbol: "₽", Aliases: []string{"rub", "₽", "ruble", "rubles", "rouble", "roubles"}},
	{Kind: Fiat, Code: "ZAR", Label: "South African Rand", Symbol: "R", Aliases: []string{"zar", "rand"}},
	{Kind: Fiat, Code: "SGD", Label: "Singapore Dollar", Symbol: "S$", Aliases: []string{"sgd", "s$", "singapore dollar"}},
	{Kind: Fiat, Code: "HKD", Label: "Hong Kong Dollar", Symbol: "HK$", Aliases: []string{"hkd", "hk$", "hong kong dollar"}},
	{Kind: Fiat, Code: "EGP", Label: "Egyptian Pound", Symbol: "E£", Aliases: []string{"egp", "egyptian pound", "egyptian pounds"}},
	{Kind: Fiat, Code: "AED", Label: "UAE Dirham", Symbol: "د.إ", Aliases: []string{"aed", "dirham", "dirhams"}},
	{Kind: Fiat, Code: "SAR", Label: "Saudi Riyal", Symbol: "﷼", Aliases: []string{"sar", "riyal", "riyals"}},
	{Kind: Fiat, Code: "KWD", Label: "Kuwaiti Dinar", Symbol: "د.ك", Aliases: []string{"kwd", "kuwaiti dinar"}},
	{Kind: Fiat, Code: "THB", Label: "Thai Baht", Symbol: "฿", Aliases: []string{"thb", "baht"}},
	{Kind: Fiat, Code: "IDR", Label: "Indonesian Rupiah", Symbol: "Rp", Aliases: []string{"idr", "rupiah"}},
	{Kind: Fiat, Code: "PHP", Label: "Philippine Peso", Symbol: "₱", Aliases: []string{"php", "₱", "philippine peso"}},
}

var cryptoAssets = []Asset{
	{Kind: Crypto, Code: "BTC", Label: "Bitcoin", Symbol: "₿", PriceFeedID: "bitcoin", Aliases: []string{"btc", "₿", "bitcoin", "bitcoins", "xbt"}},
	{Kind: Crypto, Code: "ETH", Label: "Ethereum", Symbol: "Ξ", PriceFeedID: "ethereum", Aliases: []string{"eth", "ethereum", "ether"}},
	{Kind: Crypto, Code: "USDT", Label: "Tether", Symbol: "USDT", PriceFeedID: "tether", Aliases: []string{"usdt", "tether"}},
	{Kind: Crypto, Code: "USDC", Label: "USD Coin", Symbol: "USDC", PriceFeedID: "usd-coin", Aliases: []string{"usdc", "usd coin"}},
	{Kind: Crypto, Code: "BNB", Label: "BNB", Symbol: "BNB", PriceFeedID: "binancecoin", Aliases: []string{"bnb", "binance coin"}},
	{Kind: Crypto, Code: "XRP", Label: "XRP", Symbol: "XRP", PriceFeedID: "ripple", Aliases: []string{"xrp", "ripple"}},
	{Kind: Crypto, Code: "ADA", Label: "Cardano", Symbol: "ADA", PriceFeedID: "cardano", Aliases: []string{"ada", "cardano"}},
	{Kind: Crypto, Code: "SOL", Label: "Solana", Symbol: "SOL", PriceFeedID: "solana", Aliases: []string{"sol", "solana"}},
	{Kind: Crypto, Code: "DOGE", Label: "Dogecoin", Symbol: "Ð", PriceFeedID: "dogecoin", Aliases: []string{"doge", "dogecoin"}},
	{Kind: Crypto, Code: "DOT", Label: "Polkadot", Symbol: "DOT", PriceFeedID: "polkadot", Aliases: []string{"dot", "polkadot"}},
	{Kind: Crypto, Code: "LTC", Label: "Litecoin", Symbol: "Ł", PriceFeedID: "litecoin", Aliases: []string{"ltc", "litecoin"}},
	{Kind: Crypto, Code: "BCH", Label: "Bitcoin Cash", Symbol: "BCH", PriceFeedID: "bitcoin-cash", Aliases: []string{"bch", "bitcoin cash"}},
	{Kind: Crypto, Code: "AVAX", Label: "Avalanche", Symbol: "AVAX", PriceFeedID: "avalanche-2", Aliases: []string{"avax", "avalanche"}},
	{Kind: Crypto, Code: "LINK", Label: "Chainlink", Symbol: "LINK", PriceFeedID: "chainlink", Aliases: []string{"link", "chainlink"}},
	{Kind: Crypto, Code: "XLM", Label: "Stellar", Symbol: "XLM", PriceFeedID: "stellar", Aliases: []string{"xlm", "stellar"}},
	{Kind: Crypto, Code: "XMR", Label: "Monero", Symbol: "XMR", PriceFeedID: "monero", Aliases: []string{"xmr", "monero"}},
	{Kind: Crypto, Code: "DAI", Label: "Dai", Symbol: "DAI", PriceFeedID: "dai", Aliases: []string{"dai"}},
	{Kind: Crypto, Code: "BUSD", Label: "Binance USD", Symbol: "BUSD", PriceFeedID: "binance-usd", Aliases: []string{"busd", "binance usd"}},
	{Kind: Crypto, Code: "TUSD", Label: "TrueUSD", Symbol: "TUSD", PriceFeedID: "true-usd", Aliases: []string{"tusd", "trueusd"}},
	{Kind: Crypto, Code: "MATIC", Label: "Polygon", Symbol: "MATIC", PriceFeedID: "matic-network", Aliases: []string{"matic", "polygon"}},
	{Kind: Crypto, Code: "UNI", Label: "Uniswap", Symbol: "UNI", PriceFeedID: "uniswap", Aliases: []string{"uni", "uniswap"}},
	{Kind: Crypto, Code: "SHIB", Label: "Shiba Inu", Symbol: "SHIB", PriceFeedID: "shiba-inu", Aliases: []string{"shib", "shiba inu"}},
}

// FindByCode looks an asset up by its upper-case code, fiat first.
// Used by the fallback heuristic when alias lookup fails.
func FindByCode(code string) *Asset {
	for i := range fiatAssets {
		if fiatAssets[i].Code == code {
			return &fiatAssets[i]
		}
	}
	for i := range cryptoAssets {
		if cryptoAssets[i].Code == code {
			return &cryptoAssets[i]
		}
	}
	return nil
}
