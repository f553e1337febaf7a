package schema

// Positions of the columns the extractor reads.
const (
	ColSymbol    = 0
	ColCUSIP     = 2
	ColSIPSymbol = 4
)

// EndOfDataSymbol marks the trailer row that closes the file.
const EndOfDataSymbol = "END"

// TAQMasterColumns lists the TAQ master columns in file order.
var TAQMasterColumns = []string{
	"Symbol",
	"Security_Description",
	"CUSIP",
	"Security_Type",
	"SIP_Symbol",
	"Old_Symbol",
	"Test_Symbol_Flag",
	"Listed_Exchange",
	"Tape",
	"Unit_Of_Trade",
	"Round_Lot",
	"NYSE_Industry_Code",
	"Shares_Outstanding",
	"Halt_Delay_Reason",
	"Specialist_Clearing_Agent",
	"Specialist_Clearing_Number",
	"Specialist_Post_Number",
	"Specialist_Panel",
	"TradedOnNYSEMKT",
	"TradedOnNASDAQBX",
	"TradedOnNSX",
	"TradedOnFINRA",
	"TradedOnISE",
	"TradedOnEdgeA",
	"TradedOnEdgeX",
	"TradedOnCHX",
	"TradedOnNYSE",
	"TradedOnArca",
	"TradedOnNasdaq",
	"TradedOnCBOE",
	"TradedOnPSX",
	"TradedOnBATSY",
	"TradedOnBATS",
	"TradedOnIEX",
	"Tick_Pilot_Indicator",
	"Effective_Date",
	"TradedOnLTSE",
	"TradedOnMEMX",
	"TradedOnMIAX",
}
