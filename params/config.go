// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package params

// ChainType tags which precompile/opcode set a chain config belongs to,
// per spec.md §4.13/§6: mainnet Ethereum vs. an L2 variant with its own
// (partially stubbed) precompile extensions.
type ChainType int

const (
	ChainTypeMainnet ChainType = iota
	ChainTypeOptimism
	ChainTypeArbitrum
)

// ChainConfig is the hardfork activation schedule for a chain. Forks are
// gated by block number, except Shanghai/Cancun onward which are gated by
// block timestamp, matching the Paris-and-later convention go-ethereum
// adopted once block production stopped being the fork boundary.
type ChainConfig struct {
	ChainID *uint64

	HomesteadBlock      *uint64
	TangerineWhistleBlock *uint64
	SpuriousDragonBlock  *uint64
	ByzantiumBlock       *uint64
	ConstantinopleBlock  *uint64
	PetersburgBlock      *uint64
	IstanbulBlock        *uint64
	BerlinBlock          *uint64
	LondonBlock          *uint64
	MergeNetsplitBlock   *uint64

	ShanghaiTime *uint64
	CancunTime   *uint64

	ChainType ChainType
}

func blockReached(fork *uint64, num uint64) bool {
	return fork != nil && num >= *fork
}

func timeReached(fork *uint64, time uint64) bool {
	return fork != nil && time >= *fork
}

func (c *ChainConfig) IsHomestead(num uint64) bool        { return blockReached(c.HomesteadBlock, num) }
func (c *ChainConfig) IsTangerineWhistle(num uint64) bool  { return blockReached(c.TangerineWhistleBlock, num) }
func (c *ChainConfig) IsSpuriousDragon(num uint64) bool    { return blockReached(c.SpuriousDragonBlock, num) }
func (c *ChainConfig) IsByzantium(num uint64) bool         { return blockReached(c.ByzantiumBlock, num) }
func (c *ChainConfig) IsConstantinople(num uint64) bool    { return blockReached(c.ConstantinopleBlock, num) }
func (c *ChainConfig) IsPetersburg(num uint64) bool        { return blockReached(c.PetersburgBlock, num) }
func (c *ChainConfig) IsIstanbul(num uint64) bool          { return blockReached(c.IstanbulBlock, num) }
func (c *ChainConfig) IsBerlin(num uint64) bool            { return blockReached(c.BerlinBlock, num) }
func (c *ChainConfig) IsLondon(num uint64) bool            { return blockReached(c.LondonBlock, num) }
func (c *ChainConfig) IsMerge(num uint64) bool             { return blockReached(c.MergeNetsplitBlock, num) }
func (c *ChainConfig) IsShanghai(num, time uint64) bool {
	return c.IsLondon(num) && timeReached(c.ShanghaiTime, time)
}
func (c *ChainConfig) IsCancun(num, time uint64) bool {
	return c.IsLondon(num) && timeReached(c.CancunTime, time)
}

// Rules wraps a ChainConfig evaluated at a specific (block, time) into a
// flat boolean struct. It is syntactic sugar for functions that need to
// branch on fork activation without threading the full config and a block
// number around — go-ethereum's params.Rules pattern, the EXTERNAL
// INTERFACES hardfork flags required by spec.md §6.
//
// Rules is a one-shot snapshot: it must not be reused across a fork
// transition boundary.
type Rules struct {
	ChainID uint64

	IsHomestead, IsTangerineWhistle, IsSpuriousDragon bool
	IsByzantium, IsConstantinople, IsPetersburg       bool
	IsIstanbul, IsBerlin, IsLondon                    bool
	IsMerge, IsShanghai, IsCancun                     bool

	ChainType ChainType
}

// Rules derives a Rules snapshot for the given block number and timestamp.
func (c *ChainConfig) Rules(num, time uint64) Rules {
	var chainID uint64
	if c.ChainID != nil {
		chainID = *c.ChainID
	}
	return Rules{
		ChainID:            chainID,
		IsHomestead:        c.IsHomestead(num),
		IsTangerineWhistle: c.IsTangerineWhistle(num),
		IsSpuriousDragon:   c.IsSpuriousDragon(num),
		IsByzantium:        c.IsByzantium(num),
		IsConstantinople:   c.IsConstantinople(num),
		IsPetersburg:       c.IsPetersburg(num),
		IsIstanbul:         c.IsIstanbul(num),
		IsBerlin:           c.IsBerlin(num),
		IsLondon:           c.IsLondon(num),
		IsMerge:            c.IsMerge(num),
		IsShanghai:         c.IsShanghai(num, time),
		IsCancun:           c.IsCancun(num, time),
		ChainType:          c.ChainType,
	}
}

func u64(v uint64) *uint64 { return &v }

// MainnetChainConfig is a ChainConfig with every hardfork activated at block
// and time zero — the common case for unit tests and a "latest rules"
// default that exercises every opcode and precompile.
var MainnetChainConfig = &ChainConfig{
	ChainID:               u64(1),
	HomesteadBlock:        u64(0),
	TangerineWhistleBlock: u64(0),
	SpuriousDragonBlock:   u64(0),
	ByzantiumBlock:        u64(0),
	ConstantinopleBlock:   u64(0),
	PetersburgBlock:       u64(0),
	IstanbulBlock:         u64(0),
	BerlinBlock:           u64(0),
	LondonBlock:           u64(0),
	MergeNetsplitBlock:    u64(0),
	ShanghaiTime:          u64(0),
	CancunTime:            u64(0),
	ChainType:             ChainTypeMainnet,
}

// FrontierChainConfig activates no forks, for testing pre-Homestead
// semantics (e.g. the original EXP/CALL gas schedule).
var FrontierChainConfig = &ChainConfig{ChainType: ChainTypeMainnet}
