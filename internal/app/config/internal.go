package config

type (
	InternalConfig struct {
		App           App
		EDI           EDI
		Clearinghouse Clearinghouse
	}

	App struct {
		Env                        string
		Port                       string
		Timezone                   string
		RunMigrations              bool
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		RabbitMQPostingQueue       string
		RabbitMQSubmissionQueue    string
	}

	// EDI holds the trading-partner identity used on generated 837 files
	// and the dedup window for inbound remittances.
	EDI struct {
		SenderID                string
		ReceiverID              string
		SubmitterName           string
		SubmitterID             string
		ReceiverName            string
		ContactName             string
		ContactPhone            string
		DedupWindowInHours      int
		EnforceMarylandMedicaid bool
	}

	Clearinghouse struct {
		BaseUrl          string
		APIKey           string
		TimeoutInSeconds int
	}
)
