// Package mdp solves finite Markov decision processes by value iteration.
//
// An MDP lists its states and supplies the available actions, a stochastic
// transition function and a reward function. ValueIteration computes the
// utility of every state by repeated Bellman updates and ExtractPolicy picks
// the greedy action per state.
//
//	u, err := mdp.ValueIteration(ctx, world, 1e-4)
//	if err != nil {
//	    return err
//	}
//	policy := mdp.ExtractPolicy(world, u)
//
// States with no actions are terminal: their utility is held fixed and they
// have no policy entry.
package mdp
