// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"os"
	"testing"

	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/crypto"
	"github.com/33cn/duel/common/crypto/secp256k1"
	"github.com/33cn/duel/common/db"
	rexec "github.com/33cn/duel/executor"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	cexec "github.com/33cn/duel/system/dapp/coins/executor"
	"github.com/33cn/duel/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cexec.Init("coins", nil)
	Init(dty.DuelX, nil)
	os.Exit(m.Run())
}

// 按顺序返回预设的随机数
type stubRand struct {
	draws []int64
	calls int
}

func (r *stubRand) Intn(n int64) (int64, error) {
	v := r.draws[r.calls%len(r.draws)]
	r.calls++
	return v, nil
}

type testUser struct {
	priv crypto.PrivKey
	addr string
}

func newTestUser(t *testing.T, seed byte) *testUser {
	b := make([]byte, 32)
	for i := range b {
		b[i] = seed
	}
	priv, err := secp256k1.Driver{}.PrivKeyFromBytes(b)
	require.NoError(t, err)
	return &testUser{priv: priv, addr: address.PubKeyToAddr(priv.PubKey().Bytes())}
}

type testEnv struct {
	t     *testing.T
	exec  *rexec.Executor
	alice *testUser
	bob   *testUser
	carol *testUser
}

func newTestEnv(t *testing.T, draws ...int64) *testEnv {
	memdb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	env := &testEnv{
		t:     t,
		exec:  rexec.New(memdb, nil),
		alice: newTestUser(t, 1),
		bob:   newTestUser(t, 2),
		carol: newTestUser(t, 3),
	}
	err = env.exec.Genesis([]*types.GenesisAlloc{
		{Addr: env.alice.addr, Amount: 1000},
		{Addr: env.bob.addr, Amount: 1000},
		{Addr: env.carol.addr, Amount: 1000},
	})
	require.NoError(t, err)
	if len(draws) == 0 {
		draws = []int64{0}
	}
	old := SetRandSource(&stubRand{draws: draws})
	t.Cleanup(func() { SetRandSource(old) })
	return env
}

func (env *testEnv) send(user *testUser, tx *types.Transaction, err error) (*types.TxResult, error) {
	require.NoError(env.t, err)
	tx.Sign(types.SECP256K1, user.priv)
	return env.exec.ExecTx(tx)
}

func (env *testEnv) create(user *testUser, defense, attack uint32, fee int64) (*types.TxResult, error) {
	tx, err := dty.CreateDuelCreateTx(defense, attack, fee)
	return env.send(user, tx, err)
}

func (env *testEnv) createWithPayment(user *testUser, fee, payment int64) (*types.TxResult, error) {
	tx, err := dty.CreateDuelCreateTx(10, 10, fee)
	require.NoError(env.t, err)
	tx.Amount = payment
	return env.send(user, tx, nil)
}

func (env *testEnv) join(user *testUser, initiator string, defense, attack uint32, payment int64) (*types.TxResult, error) {
	tx, err := dty.CreateDuelJoinTx(initiator, defense, attack, payment)
	return env.send(user, tx, err)
}

func (env *testEnv) resolve(user *testUser, initiator string) (*types.TxResult, error) {
	tx, err := dty.CreateDuelResolveTx(initiator)
	return env.send(user, tx, err)
}

func (env *testEnv) coins(addr string) int64 {
	accs, err := env.exec.GetBalance(&types.ReqBalance{Addresses: []string{addr}})
	require.NoError(env.t, err)
	return accs[0].Balance
}

func (env *testEnv) escrow(addr string) *types.Account {
	accs, err := env.exec.GetBalance(&types.ReqBalance{Addresses: []string{addr}, Execer: dty.DuelX})
	require.NoError(env.t, err)
	return accs[0]
}

func (env *testEnv) query(funcName string, req types.Message) (types.Message, error) {
	return env.exec.Query(dty.DuelX, funcName, req)
}

func (env *testEnv) game(initiator string) (*dty.Game, error) {
	msg, err := env.query(dty.FuncNameGetDuel, &dty.ReqDuel{Initiator: initiator})
	if err != nil {
		return nil, err
	}
	return msg.(*dty.Game), nil
}

func (env *testEnv) count(status int32, addr string) int64 {
	msg, err := env.query(dty.FuncNameGetDuelCount, &dty.ReqDuelCount{Status: status, Addr: addr})
	require.NoError(env.t, err)
	return msg.(*types.Int64).Data
}

func resolveRecord(t *testing.T, result *types.TxResult) *dty.DuelRecord {
	for _, l := range result.Receipt.Logs {
		if l.Ty == dty.TyLogDuelResolve {
			var rlog dty.ReceiptDuel
			require.NoError(t, types.Decode(l.Log, &rlog))
			return rlog.Record
		}
	}
	t.Fatal("no resolve log")
	return nil
}

func TestWinChance(t *testing.T) {
	cases := []struct {
		initiator, competitor uint32
		chance                int64
	}{
		{60, 40, 70},
		{40, 60, 30},
		{0, 100, 0},
		{100, 0, 100},
		{1000, 0, 100},
		{0, 1000, 0},
		{50, 50, 50},
		{0, 0, 50},
	}
	for _, c := range cases {
		chance := WinChance(&dty.Combatant{Defense: c.initiator}, &dty.Combatant{Defense: c.competitor})
		assert.Equal(t, c.chance, chance, "initiator %d competitor %d", c.initiator, c.competitor)
	}
}

func TestWinChanceMonotonic(t *testing.T) {
	for _, comp := range []uint32{0, 30, 100, 5000} {
		prev := int64(-1)
		for def := uint32(0); def <= 300; def++ {
			chance := WinChance(&dty.Combatant{Defense: def}, &dty.Combatant{Defense: comp})
			assert.True(t, chance >= prev)
			assert.True(t, chance >= 0 && chance <= 100)
			prev = chance
		}
	}
}

func TestWinChanceIgnoresAttack(t *testing.T) {
	base := WinChance(&dty.Combatant{Defense: 60}, &dty.Combatant{Defense: 40})
	for _, attack := range []uint32{0, 1, 99, 1 << 31} {
		assert.Equal(t, base, WinChance(&dty.Combatant{Defense: 60, Attack: attack}, &dty.Combatant{Defense: 40}))
		assert.Equal(t, base, WinChance(&dty.Combatant{Defense: 60}, &dty.Combatant{Defense: 40, Attack: attack}))
	}
}

func TestCryptoRand(t *testing.T) {
	r := NewCryptoRand()
	_, err := r.Intn(0)
	assert.Equal(t, types.ErrInvalidParam, err)
	seen := make(map[int64]bool)
	for i := 0; i < 2000; i++ {
		v, err := r.Intn(100)
		require.NoError(t, err)
		require.True(t, v >= 0 && v < 100)
		seen[v] = true
	}
	assert.True(t, len(seen) > 50)
}

func TestDuelLifecycle(t *testing.T) {
	env := newTestEnv(t, 0)
	fee := 10 * types.Coin

	_, err := env.create(env.alice, 60, 5, fee)
	require.NoError(t, err)
	assert.Equal(t, 990*types.Coin, env.coins(env.alice.addr))
	acc := env.escrow(env.alice.addr)
	assert.Equal(t, int64(0), acc.Balance)
	assert.Equal(t, fee, acc.Frozen)

	game, err := env.game(env.alice.addr)
	require.NoError(t, err)
	assert.Equal(t, dty.DuelStatusOpen, game.Status)
	assert.Equal(t, fee, game.Fee)
	assert.Equal(t, uint32(60), game.InitiatorCombatant.Defense)
	assert.Equal(t, uint32(5), game.InitiatorCombatant.Attack)
	assert.Empty(t, game.Competitor)

	_, err = env.join(env.bob, env.alice.addr, 40, 7, fee)
	require.NoError(t, err)
	assert.Equal(t, 990*types.Coin, env.coins(env.bob.addr))
	assert.Equal(t, fee, env.escrow(env.bob.addr).Frozen)
	game, err = env.game(env.alice.addr)
	require.NoError(t, err)
	assert.Equal(t, dty.DuelStatusMatched, game.Status)
	assert.Equal(t, env.bob.addr, game.Competitor)

	// carol resolves, draw 0 < 70
	result, err := env.resolve(env.carol, env.alice.addr)
	require.NoError(t, err)
	record := resolveRecord(t, result)
	assert.Equal(t, env.alice.addr, record.Winner)
	assert.Equal(t, int32(70), record.WinChance)
	assert.Equal(t, int32(0), record.Draw)
	assert.Equal(t, 2*fee, record.Prize)

	// winner gets 2 x fee, nothing stays in escrow
	assert.Equal(t, 1010*types.Coin, env.coins(env.alice.addr))
	assert.Equal(t, 990*types.Coin, env.coins(env.bob.addr))
	assert.Equal(t, 1000*types.Coin, env.coins(env.carol.addr))
	for _, addr := range []string{env.alice.addr, env.bob.addr} {
		acc := env.escrow(addr)
		assert.Equal(t, int64(0), acc.Balance)
		assert.Equal(t, int64(0), acc.Frozen)
	}

	_, err = env.game(env.alice.addr)
	assert.Equal(t, dty.ErrGameNotFound, err)
}

func TestScenarioADrawBoundary(t *testing.T) {
	for _, c := range []struct {
		draw        int64
		initiatorWins bool
	}{
		{69, true},
		{70, false},
	} {
		env := newTestEnv(t, c.draw)
		fee := types.Coin
		_, err := env.create(env.alice, 60, 0, fee)
		require.NoError(t, err)
		_, err = env.join(env.bob, env.alice.addr, 40, 0, fee)
		require.NoError(t, err)
		result, err := env.resolve(env.alice, env.alice.addr)
		require.NoError(t, err)
		record := resolveRecord(t, result)
		assert.Equal(t, int32(70), record.WinChance)
		if c.initiatorWins {
			assert.Equal(t, env.alice.addr, record.Winner)
			assert.Equal(t, 1001*types.Coin, env.coins(env.alice.addr))
		} else {
			assert.Equal(t, env.bob.addr, record.Winner)
			assert.Equal(t, 1001*types.Coin, env.coins(env.bob.addr))
		}
	}
}

func TestScenarioBZeroChance(t *testing.T) {
	for _, draw := range []int64{0, 50, 99} {
		env := newTestEnv(t, draw)
		_, err := env.create(env.alice, 0, 0, types.Coin)
		require.NoError(t, err)
		_, err = env.join(env.bob, env.alice.addr, 100, 0, types.Coin)
		require.NoError(t, err)
		result, err := env.resolve(env.bob, env.alice.addr)
		require.NoError(t, err)
		record := resolveRecord(t, result)
		assert.Equal(t, int32(0), record.WinChance)
		assert.Equal(t, env.bob.addr, record.Winner)
	}
}

func TestScenarioCResolveMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.resolve(env.alice, env.bob.addr)
	assert.Equal(t, dty.ErrGameNotFound, err)
	assert.Equal(t, 1000*types.Coin, env.coins(env.alice.addr))
	assert.Equal(t, 1000*types.Coin, env.coins(env.bob.addr))
	assert.Equal(t, int64(0), env.exec.Height())
}

func TestPaymentMismatch(t *testing.T) {
	env := newTestEnv(t)
	fee := 10 * types.Coin
	for _, payment := range []int64{fee - 1, fee + 1, 0} {
		_, err := env.createWithPayment(env.alice, fee, payment)
		assert.Equal(t, dty.ErrPaymentMismatch, err)
		assert.Equal(t, 1000*types.Coin, env.coins(env.alice.addr))
	}
	_, err := env.game(env.alice.addr)
	assert.Equal(t, dty.ErrGameNotFound, err)

	_, err = env.create(env.alice, 10, 10, fee)
	require.NoError(t, err)
	for _, payment := range []int64{fee - 1, fee + 1, 0} {
		_, err := env.join(env.bob, env.alice.addr, 10, 10, payment)
		assert.Equal(t, dty.ErrPaymentMismatch, err)
		assert.Equal(t, 1000*types.Coin, env.coins(env.bob.addr))
		assert.Equal(t, int64(0), env.escrow(env.bob.addr).Frozen)
	}
	game, err := env.game(env.alice.addr)
	require.NoError(t, err)
	assert.Equal(t, dty.DuelStatusOpen, game.Status)

	_, err = env.join(env.bob, env.alice.addr, 10, 10, fee)
	require.NoError(t, err)
	tx, err := dty.CreateDuelResolveTx(env.alice.addr)
	require.NoError(t, err)
	tx.Amount = types.Coin
	_, err = env.send(env.carol, tx, nil)
	assert.Equal(t, dty.ErrPaymentMismatch, err)
	assert.Equal(t, 1000*types.Coin, env.coins(env.carol.addr))
}

func TestInvalidFee(t *testing.T) {
	_, err := dty.CreateDuelCreateTx(1, 1, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = dty.CreateDuelCreateTx(1, 1, -5)
	assert.Equal(t, types.ErrAmount, err)

	env := newTestEnv(t)
	tx := types.CreateTx(dty.DuelX, &dty.DuelAction{
		Ty:     dty.DuelActionCreate,
		Create: &dty.DuelCreate{Combatant: &dty.Combatant{}, Fee: 0},
	}, 0)
	_, err = env.send(env.alice, tx, nil)
	assert.Equal(t, types.ErrAmount, err)

	tx = types.CreateTx(dty.DuelX, &dty.DuelAction{
		Ty:     dty.DuelActionCreate,
		Create: &dty.DuelCreate{Fee: types.Coin},
	}, types.Coin)
	_, err = env.send(env.alice, tx, nil)
	assert.Equal(t, dty.ErrNoCombatant, err)
}

func TestNoDoubleJoin(t *testing.T) {
	env := newTestEnv(t)
	fee := 5 * types.Coin
	_, err := env.create(env.alice, 10, 0, fee)
	require.NoError(t, err)
	_, err = env.join(env.bob, env.alice.addr, 10, 0, fee)
	require.NoError(t, err)

	_, err = env.join(env.carol, env.alice.addr, 10, 0, fee)
	assert.Equal(t, dty.ErrGameAlreadyJoined, err)
	_, err = env.join(env.carol, env.alice.addr, 10, 0, fee+1)
	assert.Equal(t, dty.ErrGameAlreadyJoined, err)
	assert.Equal(t, 1000*types.Coin, env.coins(env.carol.addr))

	game, err := env.game(env.alice.addr)
	require.NoError(t, err)
	assert.Equal(t, env.bob.addr, game.Competitor)
}

func TestJoinMissingAndSelfJoin(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.join(env.bob, env.alice.addr, 1, 1, types.Coin)
	assert.Equal(t, dty.ErrGameNotFound, err)
	assert.Equal(t, 1000*types.Coin, env.coins(env.bob.addr))

	_, err = env.create(env.alice, 1, 1, types.Coin)
	require.NoError(t, err)
	_, err = env.join(env.alice, env.alice.addr, 1, 1, types.Coin)
	assert.Equal(t, dty.ErrSelfJoin, err)
	assert.Equal(t, 999*types.Coin, env.coins(env.alice.addr))
}

func TestResolveWithoutCompetitor(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.create(env.alice, 1, 1, types.Coin)
	require.NoError(t, err)
	_, err = env.resolve(env.alice, env.alice.addr)
	assert.Equal(t, dty.ErrNoCompetitor, err)
	game, err := env.game(env.alice.addr)
	require.NoError(t, err)
	assert.Equal(t, dty.DuelStatusOpen, game.Status)
	assert.Equal(t, types.Coin, env.escrow(env.alice.addr).Frozen)
}

func TestCreateExisting(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.create(env.alice, 1, 1, types.Coin)
	require.NoError(t, err)
	_, err = env.create(env.alice, 2, 2, 2*types.Coin)
	assert.Equal(t, dty.ErrGameExists, err)
	assert.Equal(t, 999*types.Coin, env.coins(env.alice.addr))
	game, err := env.game(env.alice.addr)
	require.NoError(t, err)
	assert.Equal(t, types.Coin, game.Fee)
}

func TestRecreateAfterResolve(t *testing.T) {
	env := newTestEnv(t, 99)
	_, err := env.create(env.alice, 50, 0, types.Coin)
	require.NoError(t, err)
	_, err = env.join(env.bob, env.alice.addr, 50, 0, types.Coin)
	require.NoError(t, err)
	_, err = env.resolve(env.alice, env.alice.addr)
	require.NoError(t, err)

	_, err = env.create(env.alice, 3, 3, 3*types.Coin)
	require.NoError(t, err)
	game, err := env.game(env.alice.addr)
	require.NoError(t, err)
	assert.Equal(t, 3*types.Coin, game.Fee)
	assert.Equal(t, dty.DuelStatusOpen, game.Status)
}

func TestInsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.create(env.alice, 1, 1, 2000*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, 1000*types.Coin, env.coins(env.alice.addr))
	_, err = env.game(env.alice.addr)
	assert.Equal(t, dty.ErrGameNotFound, err)

	_, err = env.create(env.alice, 1, 1, 600*types.Coin)
	require.NoError(t, err)
	// bob can stake at most 1000
	_, err = env.join(env.bob, env.alice.addr, 1, 1, 600*types.Coin)
	require.NoError(t, err)
	_, err = env.create(env.bob, 1, 1, 600*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, 400*types.Coin, env.coins(env.bob.addr))
}

func TestAttackDoesNotChangeOutcome(t *testing.T) {
	for _, draw := range []int64{0, 49, 50, 99} {
		var winners []string
		for _, attack := range []uint32{0, 100, 1 << 20} {
			env := newTestEnv(t, draw)
			_, err := env.create(env.alice, 50, attack, types.Coin)
			require.NoError(t, err)
			_, err = env.join(env.bob, env.alice.addr, 50, attack/2, types.Coin)
			require.NoError(t, err)
			result, err := env.resolve(env.alice, env.alice.addr)
			require.NoError(t, err)
			winner := resolveRecord(t, result).Winner
			if winner == env.alice.addr {
				winners = append(winners, "initiator")
			} else {
				winners = append(winners, "competitor")
			}
		}
		for _, w := range winners {
			assert.Equal(t, winners[0], w, "draw %d", draw)
		}
	}
}

func TestListDuels(t *testing.T) {
	env := newTestEnv(t, 0)
	fee := types.Coin
	_, err := env.create(env.alice, 1, 1, fee)
	require.NoError(t, err)
	_, err = env.create(env.bob, 1, 1, fee)
	require.NoError(t, err)

	msg, err := env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusOpen})
	require.NoError(t, err)
	games := msg.(*dty.ReplyDuelList).Games
	require.Len(t, games, 2)
	// newest first
	assert.Equal(t, env.bob.addr, games[0].Initiator)
	assert.Equal(t, env.alice.addr, games[1].Initiator)

	msg, err = env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusOpen, Direction: 1, Count: 1})
	require.NoError(t, err)
	games = msg.(*dty.ReplyDuelList).Games
	require.Len(t, games, 1)
	assert.Equal(t, env.alice.addr, games[0].Initiator)

	// next page after alice
	msg, err = env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusOpen, Direction: 1, Count: 1, Index: games[0].Index})
	require.NoError(t, err)
	games = msg.(*dty.ReplyDuelList).Games
	require.Len(t, games, 1)
	assert.Equal(t, env.bob.addr, games[0].Initiator)

	_, err = env.join(env.carol, env.alice.addr, 1, 1, fee)
	require.NoError(t, err)
	msg, err = env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusOpen})
	require.NoError(t, err)
	games = msg.(*dty.ReplyDuelList).Games
	require.Len(t, games, 1)
	assert.Equal(t, env.bob.addr, games[0].Initiator)

	msg, err = env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusMatched, Addr: env.carol.addr})
	require.NoError(t, err)
	games = msg.(*dty.ReplyDuelList).Games
	require.Len(t, games, 1)
	assert.Equal(t, env.alice.addr, games[0].Initiator)
	assert.Equal(t, env.carol.addr, games[0].Competitor)

	msg, err = env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusOpen, Addr: env.alice.addr})
	require.NoError(t, err)
	assert.Empty(t, msg.(*dty.ReplyDuelList).Games)

	_, err = env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusResolved})
	assert.Equal(t, types.ErrInvalidParam, err)

	_, err = env.resolve(env.carol, env.alice.addr)
	require.NoError(t, err)
	msg, err = env.query(dty.FuncNameListDuels, &dty.ReqDuelList{Status: dty.DuelStatusMatched})
	require.NoError(t, err)
	assert.Empty(t, msg.(*dty.ReplyDuelList).Games)
}

func TestDuelRecordsAndCount(t *testing.T) {
	env := newTestEnv(t, 0, 99)
	fee := types.Coin
	// alice wins the first, bob the second
	_, err := env.create(env.alice, 50, 0, fee)
	require.NoError(t, err)
	_, err = env.join(env.bob, env.alice.addr, 50, 0, fee)
	require.NoError(t, err)
	_, err = env.resolve(env.alice, env.alice.addr)
	require.NoError(t, err)

	_, err = env.create(env.alice, 50, 0, fee)
	require.NoError(t, err)
	_, err = env.join(env.carol, env.alice.addr, 50, 0, fee)
	require.NoError(t, err)
	_, err = env.resolve(env.alice, env.alice.addr)
	require.NoError(t, err)

	msg, err := env.query(dty.FuncNameListDuelRecords, &dty.ReqDuelRecords{})
	require.NoError(t, err)
	records := msg.(*dty.ReplyDuelRecords).Records
	require.Len(t, records, 2)
	assert.Equal(t, env.carol.addr, records[0].Winner)
	assert.Equal(t, env.alice.addr, records[1].Winner)

	msg, err = env.query(dty.FuncNameListDuelRecords, &dty.ReqDuelRecords{Addr: env.bob.addr})
	require.NoError(t, err)
	records = msg.(*dty.ReplyDuelRecords).Records
	require.Len(t, records, 1)
	assert.Equal(t, env.bob.addr, records[0].Competitor)

	assert.Equal(t, int64(2), env.count(dty.DuelStatusOpen, ""))
	assert.Equal(t, int64(2), env.count(dty.DuelStatusMatched, ""))
	assert.Equal(t, int64(2), env.count(dty.DuelStatusResolved, ""))
	assert.Equal(t, int64(2), env.count(dty.DuelStatusResolved, env.alice.addr))
	assert.Equal(t, int64(1), env.count(dty.DuelStatusResolved, env.carol.addr))
	assert.Equal(t, int64(0), env.count(dty.DuelStatusOpen, env.bob.addr))

	_, err = env.query(dty.FuncNameGetDuelCount, &dty.ReqDuelCount{Status: 4})
	assert.Equal(t, types.ErrInvalidParam, err)

	assert.Equal(t, 1000*types.Coin, env.coins(env.alice.addr))
	assert.Equal(t, 999*types.Coin, env.coins(env.bob.addr))
	assert.Equal(t, 1001*types.Coin, env.coins(env.carol.addr))
}

func TestTxResultLogs(t *testing.T) {
	env := newTestEnv(t)
	result, err := env.create(env.alice, 1, 1, types.Coin)
	require.NoError(t, err)
	stored, err := env.exec.GetTxResult(result.Hash)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), stored.Receipt.Ty)
	var found bool
	for _, l := range stored.Receipt.Logs {
		if l.Ty == dty.TyLogDuelCreate {
			var rlog dty.ReceiptDuel
			require.NoError(t, types.Decode(l.Log, &rlog))
			assert.Equal(t, env.alice.addr, rlog.Initiator)
			assert.Equal(t, dty.DuelStatusOpen, rlog.Status)
			assert.Equal(t, types.Coin, rlog.Fee)
			found = true
		}
	}
	assert.True(t, found)
}
