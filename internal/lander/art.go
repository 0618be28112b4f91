package lander

// moonSurface is the playfield. Platforms are runs of '_' and the digit
// under a platform is its score multiplier.
var moonSurface = []string{
	`                                                                                                                                                      `,
	` *               .   *               .             *   .          .            .                                                                      `,
	`        *                           *                                                  *          .               .              .                    `,
	` .                .                    .                    .                                            *                                  *         `,
	`                                                                                                 *   .                .                .              `,
	`                                                                      .                                        *                *               *     `,
	`.         *              .                          *                           .                                 ___                                 `,
	`                                   *                            .              ^             *                   /X2 \     .           *              `,
	`      .           *                                .                       *  / \   ___                         /     \__                       .     `,
	` *                          .                                  *             /    \/X4 \  .                    /       X4\                            `,
	`               .                         *             .                    /           |          *          /           \         *                 `,
	`    .                  *                                                   /             \                   |             |                          `,
	`             .                      .               *              *      /               |      .           |              \____    .        *       `,
	`  *                      .               .                               /                 |                /                 X4 \                    `,
	`     .           *                                            .         /                  |               /                      \                   `,
	`             .             *                     *                 ____/                    \             |                        |         .        `,
	`                                        .                         / X2                       |     .     /                         |                  `,
	`       *              *          .               .               /                           |          |                           \   .             `,
	`                                                                /                            |          |                            \                `,
	`   .           *                         ____             *     |                              \       /                              |____    *      `,
	`                            .           | X2 \      .          /                                |     /                                 X2 \          `,
	`             .      *                  /      \__            |                                 |     /                                      \         `,
	`                                 *    |        x4\      .   /                                  |____/                                        \  .     `,
	`    .                       /\       /            \        |                                     X4                                           |       `,
	`               .           /  \     |              \  ____/                                                                                    \___ * `,
	`                    ___   /    \___/                \/ X2                                                                                        X4\  `,
	`       .           /X2 \ /      X4                                                                                                                  \ `,
	`             *    /     \                                                                                                                             `,
	`  .              /                                                                                                                                    `,
	`       ___      /                                                                                                                                     `,
	`      /X2 \ .  /                                                                                                                                      `,
	`     /     \  /                                                                                                                                       `,
	`.   |       \/                                                                                                                                        `,
	`    |                                                                                                                                                 `,
	`    /                                                                                                                                                 `,
	` __/                                                                                                                                                  `,
	` X2                                                                                                                                                   `,
	`                                                                                                                                                      `,
	`                                                                                                                                                      `,
	`                                                                                                                                                      `,
}

// titleArt spells LANDER across the top of the menu screens.
var titleArt = artBlock{
	X: 24,
	Y: 1,
	Rows: []string{
		` ____            ___________     ___      ___     __________      __________     __________      ____ `,
		`|    |          |    ___    |   |   |\   |   |   |   ____   \    |   _______|   |    ____  |    |    |`,
		`|    |          |   |   |   |   |   | \  |   |   |  |    \   |   |  |           |   |____| |    |    |`,
		`|    |          |   |___|   |   |   |  \ |   |   |  |     |  |   |  |_______    |        __|    |    |`,
		`|    |          |   |___|   |   |   |\  \|   |   |  |     |  |   |   _______|   |   |\   \      |____|`,
		`|    |______    |   |   |   |   |   | \  |   |   |  |     |  |   |  |           |   | \   \      ____ `,
		`|           |   |   |   |   |   |   |  \ |   |   |  |____/   |   |  |_______    |   |  \   \    |    |`,
		`|___________|   |___|   |___|   |___|   \|___|   |__________/    |__________|   |___|   \___\   |____|`,
	},
}

// Menu labels, top to bottom.
var playLabel = artBlock{
	X: 66,
	Y: 15,
	Rows: []string{
		` __               `,
		`|__| |     /\  \ /`,
		`|    |___ /~~\  | `,
	},
}

var optionsLabel = artBlock{
	X: 61,
	Y: 21,
	Rows: []string{
		` __   __  ___    __        __ `,
		`/  \ |__|  |  | /  \ |\ | /__'`,
		`\__/ |     |  | \__/ | \| .__/`,
	},
}

var quitLabel = artBlock{
	X: 68,
	Y: 27,
	Rows: []string{
		` __         ___`,
		`/  \ |  | |  | `,
		`\__X \__/ |  | `,
	},
}

// Options screen labels.
var optionsHeading = artBlock{
	X: 61,
	Y: 10,
	Rows: []string{
		` __   __  ___    __        __ `,
		`/  \ |__|  |  | /  \ |\ | /__'`,
		`\__/ |     |  | \__/ | \| .__/`,
	},
}

var soundLabel = artBlock{
	X: 63,
	Y: 17,
	Rows: []string{
		` __   __             __ `,
		`/__' /  \ |  | |\ | |  \`,
		`.__/ \__/ \__/ | \| |__/`,
	},
}

var soundOnLabel = artBlock{
	X: 55,
	Y: 22,
	Rows: []string{
		` __      `,
		`/  \ |\ |`,
		`\__/ | \|`,
	},
}

var soundOffLabel = artBlock{
	X: 86,
	Y: 22,
	Rows: []string{
		` __   ___  ___`,
		`/  \ |__  |__ `,
		`\__/ |    |   `,
	},
}

var backLabel = artBlock{
	X: 66,
	Y: 32,
	Rows: []string{
		` __        __      `,
		"|__|  /\\  /  ` |__/",
		`|__| /~~\ \__, |  \`,
	},
}
