package params

// Width 16: diagonal drawn from the Grain stream after the round constants.
var t16Table = table{
	width:         16,
	fullRounds:    8,
	partialRounds: 57,
	diagM1: []string{
		"0x2aae89ed6f8685266babda2be40ac2bd4e931664cb7eae722de7cf8e8958b84d",
		"0x2b5c7269d3a769401899ba47cb6344e1f5e6a98800c53c1d23885979ea188578",
		"0x2326a7a5ddf58cc242a1b898487dd87b3a7e96ee4da7de74ed053dc83b6ca59e",
		"0x21f16b747afc5ee86a16e506dc01db0ef3aeaf2ba873779e81cb6264fb556f55",
		"0x2552f97cf357766bd61fae3ffcab68ddf1b9af826d8ed110480b743bdf8688bc",
		"0x17430d1f8d621432eecbbac13d9c80943ca06f7e4e61ef40d1f344fc5b92637a",
		"0x151e7584b1ea873316fe524b0a38392897d9706178412151134dcce166fbe907",
		"0x1c8fe3c155684a392ae0909ec048845a114c529e84325949e7736d2442bb8a17",
		"0x2a10cb21743fb9fc92a36b27c338e7e54e77722d7291b751bc2980c39e83c112",
		"0x2ee7eb3b0bd9dc98c4f66d310e4e78dcdd3179bfca098ee09570150109c22cbe",
		"0x1ec7619d19660b4d28875c66ce07f035622172022232413ac901476c82955ba5",
		"0x190db89c07ee11f94ab18844c5eb74f76576f1ef3076988e8a3dfcca88b579e1",
		"0x0086b4db83bae6cfc7a77d5d5d0022c0defd79a8cde1f9924720fc0b6f2283c4",
		"0x2a3e0e0a45f8e85b6c3786a2812c99fcd40ea094f725a0ebf71c3247e086760a",
		"0x258c2076e00ba6b16fe4cb631bfc96f5614e37568a89087d003da1a90f83f8bd",
		"0x077010983f78bff57b4fc53f1cfeb948869d6815249b6848bcb6336e74cf9a51",
	},
	rcExternal: [][]string{
		{
			"0x11a8c50ae2baf9f5e8b3c672c7326f002cdec557448fdfa263f0adfbaaceacff",
			"0x062af6c4373daac18754f00ee840e8920e3f715aa7d14233948e54596ac34e43",
			"0x067668742769c8dc002f62ad79b936464ee18b541f9d560a1df662a1de735099",
			"0x092566abceb5edc4fdd60f23c5c605a7b85a6282a1cf7920eaf4f34587722904",
			"0x1dce678af089b569d6b90eb80d3d937f98f952e8f4928a6f6d41c4ddeea8ac8a",
			"0x0a0f0bd983e55175db6027fc884726d4c79e1bf6e6b65eb7a6051d02caa2adc3",
			"0x2ab887d5bef4f2bb90472c6da5531555ab3e5b692c21b57855d4cd77c08b73a1",
			"0x0e29f9015a7443d2be603384abb29dd7bf930d1a28686cfdbc347e9163870b73",
			"0x21b3a5f0e068934a7436d1d28e8cf0bc61d712e158a8bb2c42a57125d8727ad2",
			"0x0e1f8ea955cc9e2efd16f26fe45422f1749a9fd2fc10ff4ed3431ba73ea1c126",
			"0x2130513365c023ad8997f530b8f5077c7bc5408dc8177b0379d25eb46266d06a",
			"0x1996a13e24a307419ef17eaa2120d6a3510e7d0daff70d3b73e1c3da47d9e81a",
			"0x2ae828a9edb591d66810146f3e0efe95336e919fb8924f65807d2e20b70ffe32",
			"0x2f617fc3ddba10cfc459bef0adcb6dcf024b50924f5a9719707ea9cfaceeba86",
			"0x26034af9d21fea59b35e1edd6bc6ad24e39bb2309014f2df434b01d52360ad6a",
			"0x0861d9a9b50eda74e99bc741bab3c8d7c36e4dc3828ef88a8822ad1d97cb2dc1",
		},
		{
			"0x09d307c6251380f12959318cb1b6b6bc8b5f0e87c8aaa5b9a9c02a747f82230a",
			"0x2d7249c015893681c5b6406a5f3ed9913181fa18cf0c9cc5404d002612e5f6ee",
			"0x300c394ab0169e3579b604d3e4c8344ffa05164a7fc66d1d0fec5e1b0aba7c3c",
			"0x053246a30507749b78daca7f5e1bb40d8dd095a228d4754f587a522ae3bebc5f",
			"0x2bb8c89e9959b6bc4af0814110a58e9f2de278cb4ce3a3e85b5df69f20bc6c85",
			"0x03d087490008dce2b785898ea7d63aa073e5b01645c59c49ce136275cf5983b5",
			"0x1b1860486b80b33467e250e5fee700e42ea8b1010ae9720e0dba074d0a711483",
			"0x07c2df19e33502e0d6407204240d9ae9d53671a8acb8275c87a878c8d31ae6a9",
			"0x2681360e637f307e9d3dd46d8d9ac32d1eaa80fb008a164c495cdcba8f80575b",
			"0x26e40b31dea8fd07591fe4cd5046b8995ad2b38cfff12bb5d9556049062f8c60",
			"0x142db0b3205d81b91e289e8640447ce61d0a5624e7a80276b2aafc6c020bd45b",
			"0x11481ae8ce1f4453b29a23cdf06bb4da1344fa0858cc366eab6e2871f6820bbf",
			"0x14afa414edfcf985dc050516d4e6e6f61b32fdf2ec6faee7eae103be602c2d9d",
			"0x07fcf3ec2df0db6971c71924e8adb1f96f8d53fe7de3676a7704f621ac470f5b",
			"0x21daa5e36df00136f54419d5e4c09ec09bba58903173c55822e51d65b0779e6f",
			"0x2e324f627abadd10f08206430befea7ae4b5ed5e965ec1380af6f883eeac7d3f",
		},
		{
			"0x0b5bb384cfccbd7b191e651901f6193f949a3c8a226cec1fde2a43d8829dbe86",
			"0x069ddb007faabaf73350dc4eadb907bd2d0d4a214f6654b30756e8ad18df5f18",
			"0x208b465f89b447783ea3fb14cbb235891ae8c4e5a5031365f470bab6cf86dd3c",
			"0x136297f9e831fb9640b024db98afd0a4eba714daa31944c4e7613dd78fc7e14c",
			"0x10a7859a7db68fae99f59a4a784cf518f4e7b9cf94ad7aadfc8b089f3b3ed9e8",
			"0x0862b4da27d415d0ee6ee421b3dd98ecb3188489103fc6028684d166a5212ebc",
			"0x233af2967f6f7740ff8feb103ff33416f7d2a2f08aeb48e6a84347789fa4404c",
			"0x2ae069b5948ab8f0ab759617732fabf28f734dfd5732f7f22d0797078908d592",
			"0x00583f3b42880263ba0069d278a8d6c633913f930510ea5e8bc4fdb6e0d654b8",
			"0x12e2f29632a6e47b536e42912519b2f5f6086fd92ba211af7776be12b342730a",
			"0x06dbb6c7b8448c820ae128612b7fc4698a74cfa8bb058a90742d4188b3063bf1",
			"0x18509380d353243decd53f8b29e3e830dce894b5ed590eeeab18b1b92f3a6da7",
			"0x0c6fc99e5d3a8ba836d2a51632a7efa4a2732c5be32ff1bb8988e97357cfe561",
			"0x042196cef447997203de5aa95cd5a8158ddfb11a8ae83c733cb3ce942f1e3952",
			"0x2d741b558a9a39fc48442b13f7a09394d878d41b7963105175b5eacc0762d341",
			"0x28561383e49fc55b465f9a55c56872a9da39cc1a8601c984fc142f519e01107a",
		},
		{
			"0x283c11ef394149faf2dabef893843ad8afc42d8322002648b15c7a6b2f8e36da",
			"0x16e5502b7577231018c8b8a59b3d9d60952d4e169fa38a080ce1860cd771ea5d",
			"0x1dc343ebb1999bdd849b519b6c88c25ed40fa673b44a37ae895f1ee2efa97458",
			"0x192b8afb63d8d9357b5d74136d341c2811f611336acfeb20a0e4a83fc726cb1e",
			"0x1a30b60940afd0871265b329ec9ae86a61df686cbb09b6b57adcd2eefbe243b8",
			"0x20a00f04fb239f151d607d4a38fda2ef13fcfdf2cb7290c86b19bdedae4048fc",
			"0x0293b42083e8d2ae737e112e012df4927fa61a56753e4cd9ada1690e5ed529da",
			"0x2db103a89e5cb3b42ac01913fe5c8de3cfe959ea6033bfc3a17451906560f807",
			"0x1cb81d2dfa938c9397a2da95a68184983ce0fff321071470250b781cdd80c73c",
			"0x03f1355c9f18f37d7837813b19946787301f68b7b3720f02cd358bc50c9ad216",
			"0x13af73a19617a92625a1c30743bc9775a4e8b0b9f3cef088f39bbccf12caa3f5",
			"0x114938f09f618d6176cff87ec5d1532a265ac4a87e21d68ee61dae8d9a554924",
			"0x0acb455d2f8dd661528e732ea07ef93c9e03630f51903b86bc6835afcc03a98a",
			"0x151adb5dd2d8fa77437afe73aed319d84dd546839f9d7b687e825d9b23dc1744",
			"0x25548523d039ac346af19b64d52549e24dea02ea0d5476a0395c4c438f613464",
			"0x09cc75c22a37ffa264db2540ae85d1ef6965111461eabc9fc652a879b4bdd140",
		},
		{
			"0x1c4b724162943f08ad657557a638bf3e7bec8e57d5db00b9767682c8213132d8",
			"0x2035614227e301894056bf197033ea74e568e22a4644da4234fad6010f9195f1",
			"0x2867e28d25a0560e620af7e734e3155528406285834db300d3f88a5c63158545",
			"0x2d9aba98839b67ae817c673f35059c574d229529650b0b718e0a89de46bc9b77",
			"0x2620dcb35abd4a2c1c34219eed205f8cd095a96c00cb66dbe106127615562823",
			"0x189693ff51f37b66cdb414147465ba7aebbed3006853a8b6695b46d088da9f9d",
			"0x0dcf0bb67aa309914b0aee36c52661723c0b3af0abef68d43896bab66a111d80",
			"0x207abac676cab81bdee421468577de3d55df734bcfc5e7b0966c7c05f6676ed5",
			"0x072751669cc40c66a1e56cacd6a57ebef404b8089d8bcb827bed335b3a81f68b",
			"0x2dd0616e2fab6505dc6a0ef4470139d33dace70f7102a179c6c5f45e197a3b31",
			"0x2b6d0ca50c9b10229774a059bee1fc4d090c879bdc49fd79a6e97be85de5421c",
			"0x1315947727a368a3713ac6b5968cb50ae30ed2f26546062eb3be935284b2d7ac",
			"0x2c50018a609e805dd45428015180eef905c885d10f4bdc57bf822bcdbb7af7bc",
			"0x1a51c15bbedba963fb108a0b5470851f0e9896f6ebb1b3b6e51ed5c6c5e26ed4",
			"0x221a70968ceadb2b1a3949215db03d70457982d2e5bdce6edd224837ed952757",
			"0x11536753adfe665c99ccb6a38cbd9d06c3c7b7122b51dc063628a669dded0b36",
		},
		{
			"0x031897f30796e50a12b212bd146ed58fb50b443ae9a2dbfdb4f6b8fe5c61479e",
			"0x1f56af932c2012a38d77352c6ddb68fa13c1c9c14ba96fe7e6d170ffed0d759a",
			"0x1ecd95dae8cb508bcf72e6584898d2108854749c3cc686e4b02f8fe57aed95df",
			"0x02fabaa828c27c721f68c33d9d2b881210704a41d9c28f0a4af02e67fd345caf",
			"0x1da2fc3d073c37c2921af16e44330ee72caec36643d75e766c7437c59b12d6e4",
			"0x1ee20f40ea03cb4d5620d4422f732f547c198e40fef3839370868c44a0eb5d17",
			"0x1c79db7d2a94ac6cc15285a8e5de39e4e93b574c4d7274e08b5f27e98c96a9cc",
			"0x039323133de3519bd46223b43f8905772323e7111b398cab542b4fbdbd4b4d8d",
			"0x02e21c346778fed85751f95cca3da1e67f96fb5d4c4a400ec81e324f99ce88e3",
			"0x174199bd6b9babd9961f9076e8e09c47808ea337a2e83b4b80d7685e1f01912b",
			"0x29a0cc2bd15ed76a356d76fd2c33cc8df84e81068ac799e8a9eca0a8e2836d14",
			"0x05136a95e080ef56c23c099a7f8569667584655eb8d8cef8dc46ad90943f484a",
			"0x2820e3357abf5aeedf9a457603a627e9bdd807df2734bd6e81051b009f13093c",
			"0x205e6b631bad8731629ac0af44645716f0f9dd549d7be0aa4ecaa82fda20276c",
			"0x1eb9ab4dd7426e30f809c9929f84ea59d6136daa5f7022847ac8e01f04ee91e2",
			"0x2d89f59253f5b9a24e0188c1ffe0fe6d1585c30c019bba8b4c13fb65441d8b0c",
		},
		{
			"0x2bba2d4afc396925d03d39ea49fd7d23174a3ee023a3625b7d937936b78496f3",
			"0x0e59a58b602d4ca9e2ca2a10796a2356188a39eafa39e5525f53f560d3349cbd",
			"0x1cc183780561724fe8db9d8f8c456c32c8c29556c12c0157ef8fbc9f00e789a7",
			"0x054120821f04fd778dde8968f55ba1f8621a17aac4c0dae7fd3e19b5ffe7ed32",
			"0x1f02893a858c61d860abd638710bc13aa6ae1ee2f3227513c92378c9d74d04a9",
			"0x0371fd918bcd2d93ca93864f1dfb8c851c2074ed5b06fd1339ba1eedd20a4078",
			"0x1f3fb61afc1ccc181b5f33139f59cdbee76778726b9a73fbc196e745afd3f10a",
			"0x1f6ab61feaa716f4311adca796e444e9636abebb501dd7224692fdfa0d64c9fd",
			"0x0bbc08a17c0f31e73a0049d3464897167566880bbc884eab974c63b37e663589",
			"0x2f6e6c68f97cffb2035d973014678081f8a8f0fede19b7d5702d6b5e368f265c",
			"0x10eae0663059eba3e2b842c9076076b5241b4977dec5912f145d891fe58e9b93",
			"0x0f234bec6cc14051fbb4ebaadc99aaca497c1c2d5fef51e5edb6e8174fc737b5",
			"0x11d7a67da5230703f013ee574653d7e02dcb7fdf07f39f21410fda7ffcb09f9a",
			"0x0fee562c5444f1e094b4a6bd732b720771f9ba98db7dcf8231b8d17646843432",
			"0x0a076467e3a9603a7763d3202616302c719e0cc05870d0a8458842e30ce047d3",
			"0x1c733d34815220317facf6f54ea32006e2d3986aae8c72add1b2e1196234ddf9",
		},
		{
			"0x186d4f686994b1e7790b2ecba770c373ee1d70fd63b71073e65ecad88dd5a3a9",
			"0x12d1d277d3ccb4997d6cd545981b73bb48fab183bf9de1db16e0d1cbcf44c313",
			"0x16169740abc733a5753234257d3189d594d1ee5b2ba7ea9445707842d6805bdd",
			"0x2566d99b2fc31cb583aa146e9dd39ccc09436a45ade8a57c9f4c2f4daf9632b1",
			"0x146f2ba6b24e1f31962cbadae6b36fc4a896cc6eb99d63d9859a2a4f91aadcda",
			"0x2ad5aee9f6379bb5e275b6c2ac947fb0d54216c85a6c786b2b5ba133a1ce17ea",
			"0x2fcdf08ef110e18c877c4e7e28c4f902bface389a0b955af669065d0766d83a7",
			"0x2d9f57de99fac20c55f402f06d9c9d3a8f49d62fb106e4dd8cca84cbd685c06a",
			"0x1c039fc13e4161998ed60fc909e194ebceb1e7a4ee755d7201ff96ecf3632e03",
			"0x17f2ad6ecaaf3e5db04b6aea8d17bcb58cfe4a1024ecdba3ef5d57dbfd020202",
			"0x196ec1e27eab458b378961284b6a98a6766cd6b379b822868715e826e0a21406",
			"0x109afa2d34c4fbac99becfa70f20b2087f7158413a02604b386684f3f848a896",
			"0x148bfccbaaf2f7e951ef266b8c11a8c19bfe013749c38f5bcfe608d3282fb37c",
			"0x0a25d11a8d1ed5c87e03b684b7b6d34140063cb4f77e312ec5ac12da98911e40",
			"0x2479d850bb1a9b9143f126da89063a8a3e5d0a9d5917e2bfa5927d8eeb70c526",
			"0x115107e62902f6facbd8a1caa2a2f67a15301e5c034cb99c764f6402ca331781",
		},
	},
	rcInternal: []string{
		"0x0f1139934f4fb0ff2f4bd0b7d28544a1c8938de92dcf965e1a1781c86aa8e6c2",
		"0x2b6f9a7fe52ad45ae8857683ea066cdba3f7c3dc7da78411c83583070ac12d47",
		"0x18fcc896be2e9edcfd06d0ef23c523956148f3abcffcb0802e57c65dfa7eb6d8",
		"0x13ae7493c450aec181999c3fb9c0b4d4a5a595672b2cab4181a5b52ec2fccf68",
		"0x21376c58b83138f960981bcf86f680c79081c95f6914477fb5d6cfc7497c1526",
		"0x142335a55e77462aaac6aebd3f92ccb12e15204546af29eed4f5e73600a4bf8c",
		"0x0c5ddae16b04dc051c9f419c25b7f6408a3d653ebda349ce9332593b371fdf33",
		"0x2689b4678392a84600cf0b6fb25c9b35c065b6958aaa056ae8b099fa61e87b75",
		"0x2c57afc39ed2d8ec9b9cf1c685f7b73c0ac1d0540460ef91ee30e56b84607be5",
		"0x1b78b860308b6b50845c744c96a2237fc6ea46a05d4884dbe8a5e797432c269a",
		"0x13cc94f496327f946bd5bf504ab86714bc345f836fcb9b1fe307c40d62c3be3b",
		"0x24d6de093538a86baacd50c2ba65c212bbfd46c88acf6adc911e678bfc7c1014",
		"0x2258067f017ee12ae23944f9b71c0e8f39d165a22995c8a12a76bb340c853aeb",
		"0x14b3d102f33c05e6ea23d0159d2bf879ca8bca2ee547e25bde0d3289295542fc",
		"0x2ab89c7fffc98dc5ba3374ee0ec8c58607e45015b08cb6d13d282d13fdcd9cbb",
		"0x2b7b6c147957fe1e074237cb272f8b38fadf548ab37c7cca248c2b6e7f6ef184",
		"0x22e4d3e1b886adcd0f5b0cf73c1a9bf1d3db30305651dc858b75c2c22c1b4b0d",
		"0x0b68fa9b0d5df7dce1621bebf659a18285204c82effc3a17a52c8f869a04386f",
		"0x1634373a4427e6ed6822633c676f76244b7323df66094f7dac02febbabf93ce6",
		"0x161816eae4a5a59647769db36bd32d91e36a4d2881180921c6ae1c774da8a88c",
		"0x0e8dc7cd6f5219b8f0a202d5d9142eb80144fb4945777175cc21a5de7f93734d",
		"0x125c7c9c18bfc84d8298305590ffbb6a6ec51389eb2678522ba53dc7b6a9c989",
		"0x0fa705e5fb58d754efb803b9c24ded86fdf44f0b9027858cb7468889b9b793f9",
		"0x2db7b16fa0d8cafdb13856e67e232531b6b64b181717b56e918d895d1f6de779",
		"0x20ee21a8e99de49e0f23484346d51ca84c763fd3bc42ed49302ce517efb7c3d1",
		"0x2464170cd57c89626cd9f1c25ea604103cf5c7c6b6384d63cccc2539fd227b10",
		"0x18d92ee6e4ad5ed8671a3a902e471b7b17423a0a123a069f5ce724d219900e6e",
		"0x06e7eb25aa2f77c9f64e6e997569593b1b1aada9d97b4fa8d5aa58eaca28ee3d",
		"0x245f3670a6e3be9104fc999f977e05dab46a0434e682272afdfe33b431489422",
		"0x2338e44c82e527c3f9b4064e9691a01b01426c264a5eab102627ca1798a96731",
		"0x025ba964c43c4dd03b90be052c367b5988b0f613d67afe23caecb7535b02d8c2",
		"0x227a926359ecb99dbf2fbb5bcfeb66b443b73074de47f75d5285a63d5e9bb8d0",
		"0x080e987035c7ab8091afdab9737d67f7b29d5a055cfe3e80da76c5ed40036fcd",
		"0x287d9727fa9787cb13d2c6c4f861fe6948ce2085e817b17f2d01c7ac5d9a71e2",
		"0x0cff9c7671547d0403a7c6dd36a818db81d84f73c6618b28b9adc117de6ea286",
		"0x231cbd6dbd1339319bdb4549090f7f907c46f520aaea6c3e669b1b933bc978df",
		"0x003fe17bbf0d32f5eef248969461584ff7718c1a84e79daf88c813868f09a10b",
		"0x13768255aa238077f21510e708027b2a9379b9bbbd34e832220ef0c741d7bc76",
		"0x19f3f23131739230955fa717eda73f9da0bf596b1dff0c23ed24cb2f95044160",
		"0x2b24106b3883d29d76325e0ea82d0e34c742b992fe78f91e09c7e308e8d37ddc",
		"0x000fe2d40c9e86c9d35e148a06ea4a3410f29e7519e394259e0f6afbfb6519fc",
		"0x27ae2a5837cf9c79ccabe4f7f61252ec8e6bbb272005297cca83cc40b4110e89",
		"0x15684fefda12b32ba4873564c3502a67a2076134f71ff66f4e2ee5315b02a19c",
		"0x21045f6063ec9e2e6e7040c0949a46235693805af8e75a29760dd49455e61dda",
		"0x00ff37a0311730e3ce35c3ae5467f47401add02962daa4cebcf2cae53085eb10",
		"0x12a8f68dad75db509547b97c08699ef05dc6e7a871553dac62f3d9bee87e14dd",
		"0x0444811de68c064af36942e4ae9059284f0dfe86650c72cacfba8c8a06e920ff",
		"0x21c1763df1a7206705b65d0942acec0c4cf61e60782ffae540b6c41dd6a43d50",
		"0x2575340455a05474d748608031d21ea1502e27c6fd348f9992cf8881c2d81e69",
		"0x08f501b2028eb549372061ad3423e3f0f71bc45b89870be397c5c5e01b19760e",
		"0x05b62275eb9fa36c94136efb0b3767bde46ff1d35b811759aa2b54c90dabbb54",
		"0x0519ec5dc1a9b538923f0c3354603bd0c7d7acd9b9ce817b70bb98acc4744d58",
		"0x1549a0a9856793b1fb73049189f34b2e0ed9e08c48875359aa899dcee91e1e82",
		"0x06191e3ff7936bd97b948b095a6bb2e458b33a4f2a731b5a06c347f1f6b46d6d",
		"0x2a3d690c70b4930341afbbea186b0394a3a7dd7d911f8106db6c96476395f25b",
		"0x04d39a7a0b5f372041d717d422dc3b862a8a8b6ed1a174efb24b923c9505c5b0",
		"0x083b47892d403e287bbf80d319866f50adc5a5b50f81f1708986078e64065b26",
	},
}
