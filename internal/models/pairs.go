package models

// AudioPair is one entry of the comparison catalog the study frontend plays.
type AudioPair struct {
	PairID string `json:"pairId"`
	Audio1 string `json:"audio1"`
	Audio2 string `json:"audio2"`
}

// AudioPairCatalog mirrors the comparisons defined in the frontend, so that
// generated test datasets look like real ones and carry proper pair ids.
var AudioPairCatalog = []AudioPair{
	// Bohemian Rhapsody pairs
	{PairID: "bohemian_orig_vs_32", Audio1: "audio/Bohemian_Original.wav", Audio2: "audio/Bohemian_32.wav"},
	{PairID: "bohemian_orig_vs_64", Audio1: "audio/Bohemian_Original.wav", Audio2: "audio/Bohemian_64.wav"},
	{PairID: "bohemian_128_vs_orig", Audio1: "audio/Bohemian_128.wav", Audio2: "audio/Bohemian_Original.wav"},
	{PairID: "bohemian_224_vs_orig", Audio1: "audio/Bohemian_224.wav", Audio2: "audio/Bohemian_Original.wav"},
	{PairID: "bohemian_320_vs_orig", Audio1: "audio/Bohemian_320.wav", Audio2: "audio/Bohemian_Original.wav"},
	{PairID: "bohemian_orig_vs_orig", Audio1: "audio/Bohemian_Original.wav", Audio2: "audio/Bohemian_Original.wav"},
	// Conan Gray pairs
	{PairID: "conan_32_vs_orig", Audio1: "audio/Conan_32.wav", Audio2: "audio/Conan_Original.wav"},
	{PairID: "conan_orig_vs_64", Audio1: "audio/Conan_Original.wav", Audio2: "audio/Conan_64.wav"},
	{PairID: "conan_orig_vs_128", Audio1: "audio/Conan_Original.wav", Audio2: "audio/Conan_128.wav"},
	{PairID: "conan_224_vs_orig", Audio1: "audio/Conan_224.wav", Audio2: "audio/Conan_Original.wav"},
	{PairID: "conan_320_vs_orig", Audio1: "audio/Conan_320.wav", Audio2: "audio/Conan_Original.wav"},
	{PairID: "conan_orig_vs_orig", Audio1: "audio/Conan_Original.wav", Audio2: "audio/Conan_Original.wav"},
	// Tom's Diner pairs
	{PairID: "tomsdiner_orig_vs_32", Audio1: "audio/TomsDiner_Original.wav", Audio2: "audio/TomsDiner_32.wav"},
	{PairID: "tomsdiner_64_vs_orig", Audio1: "audio/TomsDiner_64.wav", Audio2: "audio/TomsDiner_Original.wav"},
	{PairID: "tomsdiner_128_vs_orig", Audio1: "audio/TomsDiner_128.wav", Audio2: "audio/TomsDiner_Original.wav"},
	{PairID: "tomsdiner_orig_vs_224", Audio1: "audio/TomsDiner_Original.wav", Audio2: "audio/TomsDiner_224.wav"},
	{PairID: "tomsdiner_320_vs_orig", Audio1: "audio/TomsDiner_320.wav", Audio2: "audio/TomsDiner_Original.wav"},
	{PairID: "tomsdiner_orig_vs_orig", Audio1: "audio/TomsDiner_Original.wav", Audio2: "audio/TomsDiner_Original.wav"},
}
