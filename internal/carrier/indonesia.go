package carrier

// IndonesiaDialingCode is the dialing code the built-in table covers.
const IndonesiaDialingCode = 62

// Indonesia returns the built-in Indonesian mobile prefix table. The caller
// owns the returned map and may layer configured overrides on top before
// building a Resolver.
func Indonesia() map[string]string {
	return map[string]string{
		// Telkomsel
		"0811": "Telkomsel",
		"0812": "Telkomsel",
		"0813": "Telkomsel",
		"0821": "Telkomsel",
		"0822": "Telkomsel",
		"0823": "Telkomsel",
		"0851": "Telkomsel",
		"0852": "Telkomsel",
		"0853": "Telkomsel",

		// Indosat Ooredoo
		"0814": "Indosat Ooredoo",
		"0815": "Indosat Ooredoo",
		"0816": "Indosat Ooredoo",
		"0855": "Indosat Ooredoo",
		"0856": "Indosat Ooredoo",
		"0857": "Indosat Ooredoo",
		"0858": "Indosat Ooredoo",

		// XL Axiata
		"0817": "XL Axiata",
		"0818": "XL Axiata",
		"0819": "XL Axiata",
		"0859": "XL Axiata",
		"0877": "XL Axiata",
		"0878": "XL Axiata",

		// Axis (operated by XL Axiata)
		"0831": "Axis",
		"0832": "Axis",
		"0833": "Axis",
		"0838": "Axis",

		// Tri
		"0895": "Tri",
		"0896": "Tri",
		"0897": "Tri",
		"0898": "Tri",
		"0899": "Tri",

		// Smartfren
		"0881": "Smartfren",
		"0882": "Smartfren",
		"0883": "Smartfren",
		"0884": "Smartfren",
		"0885": "Smartfren",
		"0886": "Smartfren",
		"0887": "Smartfren",
		"0888": "Smartfren",
		"0889": "Smartfren",
	}
}
