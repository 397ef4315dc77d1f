package registry

// knownProtocols maps package addresses to protocol entries. The table covers
// the major Sui DeFi protocols plus core framework and infrastructure
// packages observed in decoded traffic.
var knownProtocols = map[string]ProtocolInfo{
	// DEXs and trading platforms
	"0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb": {
		Name:        "Cetus",
		Kind:        KindDEX,
		Category:    "DeFi",
		Description: "Concentrated liquidity market maker DEX",
	},
	"0xeffc8ae61f439bb34c9b905ff8f29ec56873dcedf81c7123ff2f1f67c45ec302": {
		Name:        "Cetus Aggregator",
		Kind:        KindDEX,
		Category:    "DeFi",
		Description: "Cetus aggregator for optimal trade routing",
	},
	"0x996c4d9480708fb8b92aa7acf819fb0497b5ec8e65ba06601cae2fb6db3312c3": {
		Name:        "Cetus Integration",
		Kind:        KindDEX,
		Category:    "DeFi",
		Description: "Cetus integration contract for third-party protocols",
	},
	"0x91bfbc386a41afcfd9b2533058d7e915a1d3829089cc268ff4333d54d6339ca1": {
		Name:        "Turbos",
		Kind:        KindDEX,
		Category:    "DeFi",
		Description: "Non-custodial DEX with concentrated liquidity AMM",
	},
	"0x5d1b99f4d45f1440f2fd6f535c2aee8e550eaea7af877cafe8d456cdf4c4b8d": {
		Name:     "Kriya",
		Kind:     KindDEX,
		Category: "DeFi",
	},
	"0x4379259b0f0f547b84ec1c81d704f24861edd8afd8fa6bb9c082e44fbf97a27a": {
		Name:        "Kriya DEX",
		Kind:        KindDEX,
		Category:    "DeFi",
		Description: "Orderbook-based DEX for perpetuals trading",
	},
	"0x361dd589b98e8fcda9dc7f53a4b2a5b4a5c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8": {
		Name:        "Bluefin",
		Kind:        KindDEX,
		Category:    "DeFi",
		Description: "Decentralized perpetuals exchange",
	},
	"0x2c8d603bc51326b8c13cef9dd07031a408a48dddb541963357661df5d3204809": {
		Name:        "Aftermath Finance",
		Kind:        KindDEX,
		Category:    "DeFi",
		Description: "Multi-protocol DEX with swaps, pools and farms",
	},

	// Lending
	"0xa99b8952d4f7d947ea77fe0ecdcc9e5fc0bcab2841d6e2a5aa00c3044e5544b5": {
		Name:        "NAVI Protocol",
		Kind:        KindLending,
		Category:    "DeFi",
		Description: "Liquidity protocol offering lending and borrowing",
	},
	"0xa757975255146dc9686aa823b7838b507f315d704f428cbadad2f4ea061939d9": {
		Name:        "Scallop",
		Kind:        KindLending,
		Category:    "DeFi",
		Description: "Over-collateralized lending protocol",
	},
	"0x07871c4b3c847a0f674510d4978d5cf6f960452795e8ff6f189fd2088a3f6ac7": {
		Name:     "Scallop Core",
		Kind:     KindLending,
		Category: "DeFi",
	},
	"0xefe8b36d5b2e43728cc323298626b83177803521d195cfb11e15b910e892fddf": {
		Name:     "Scallop Core Object",
		Kind:     KindLending,
		Category: "DeFi",
	},

	// Core framework and infrastructure
	"0x2": {
		Name:        "Sui Framework",
		Kind:        KindOther,
		Category:    "Core",
		Description: "Core Sui blockchain framework and standard library",
	},
	"0x5306f64e312b581766351c07af79c72fcb1cd25147157fdc2f8ad76de9a3fb6a": {
		Name:        "Wormhole Bridge",
		Kind:        KindBridge,
		Category:    "Cross-Chain",
		Description: "Cross-chain bridge for asset transfers to Sui",
	},
	"0xaeab97f96cf9877fee2883315d459552b2b921edc16d7ceac6eab944dd88919c": {
		Name:     "Wormhole State",
		Kind:     KindBridge,
		Category: "Cross-Chain",
	},
	"0x04e20ddf36af412a4096f9014f4a565af9e812db9a05cc40254846cf6ed0ad91": {
		Name:        "Pyth Oracle",
		Kind:        KindOracle,
		Category:    "Infrastructure",
		Description: "Price feeds for DeFi protocols on Sui",
	},
	"0x6b3178db112372be5a78feb708bc39a4ef49cd52224aa34f8a23c1425d280c27": {
		Name:        "DeepBook Protocol",
		Kind:        KindInfrastructure,
		Category:    "Infrastructure",
		Description: "Decentralized central limit order book",
	},
	"0x719685bc5e45910d8e7e85240d39711e4ce9c5b23bb89cf38daabd9dc9ef915f": {
		Name:     "Price Oracle",
		Kind:     KindOracle,
		Category: "Infrastructure",
	},
	"0x794a0d48b2deccba87c8f8c0448a99ac29298a866ce19010b59e44abf45fb910": {
		Name:     "Market Data",
		Kind:     KindInfrastructure,
		Category: "Infrastructure",
	},
	"0xe05dafb5133bcffb8d59f4e12465dc0e9faeaa05e3e342a08fe135800e3e4407": {
		Name:     "Liquidity Pool",
		Kind:     KindInfrastructure,
		Category: "Infrastructure",
	},
	"0xf948981b806057580f91622417534f491da5f61aeaf33d0ed8e69fd5691c95ce": {
		Name:     "Trading Engine",
		Kind:     KindInfrastructure,
		Category: "Infrastructure",
	},
	"0xdaa46292632c3c4d8f31f23ea0f9b36a28ff3677e9684980e4438403a67a3d8f": {
		Name:     "Fee Collector",
		Kind:     KindInfrastructure,
		Category: "Infrastructure",
	},
	"0x0000000000000000000000000000000000000000000000000000000000000006": {
		Name:        "Clock",
		Kind:        KindInfrastructure,
		Category:    "Core",
		Description: "Sui blockchain clock object",
	},

	// NFT and gaming
	"0x684df9c8af8583706ba48460c924284f7fde157c230bfec8c3ecfb0f8e18a854": {
		Name:        "BlueMove",
		Kind:        KindNFT,
		Category:    "NFTs",
		Description: "NFT marketplace supporting dynamic NFTs",
	},

	// Stablecoins
	"0x2375a0b1ec12010aaea3b2545acfa2ad34cfbba03ce4b59f4c39e1e25eed1b2a": {
		Name:        "Bucket Protocol",
		Kind:        KindOther,
		Category:    "DeFi",
		Description: "Over-collateralized programmable stablecoin",
	},
}

// knownTokens maps fully-qualified coin type tags to display symbols.
var knownTokens = map[string]string{
	"0x2::sui::SUI": "SUI",
	"0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC": "USDC",
	"0x5d4b302506645c37ff133b98c4b50a5ae14841659738d6d733d59d0d217a93bf::coin::COIN": "WETH",
	"0xaf8cd5edc19c4512f4259f0bee101a40d41ebd73820c7a13f434611c87e57ad6::coin::COIN": "USDT",
}

// knownValidators maps validator addresses to operator entries. The table is
// intentionally small; unresolved addresses simply fall back to shortened
// display form.
var knownValidators = map[string]AddressInfo{
	"0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef": {
		Name:        "Sui Foundation Validator",
		Description: "Official Sui Foundation validator",
	},
	"0xabcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890": {
		Name:        "Mysten Labs Validator",
		Description: "Mysten Labs validator node",
	},
	"0x9876543210fedcba9876543210fedcba9876543210fedcba9876543210fedcba": {
		Name:        "Community Validator #1",
		Description: "Community-run validator",
	},
}

// knownExchanges maps exchange hot wallet addresses to entries.
var knownExchanges = map[string]AddressInfo{
	"0x1111111111111111111111111111111111111111111111111111111111111111": {
		Name:        "Binance",
		Description: "Binance exchange hot wallet",
	},
	"0x2222222222222222222222222222222222222222222222222222222222222222": {
		Name:        "Coinbase",
		Description: "Coinbase exchange hot wallet",
	},
	"0x3333333333333333333333333333333333333333333333333333333333333333": {
		Name:        "Kraken",
		Description: "Kraken exchange hot wallet",
	},
	"0x4444444444444444444444444444444444444444444444444444444444444444": {
		Name:        "OKX",
		Description: "OKX exchange hot wallet",
	},
}
