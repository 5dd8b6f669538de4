package engine

// meanMovesPerPosition is a fixed empirical table of the average number of
// geometrically reachable moves observed per (color, square, piece type)
// across a large sample of random games, indexed as
// color*(96*6) + square*6 + type. It is shipped verbatim as measured and
// only ever read, never recomputed at runtime.
var meanMovesPerPosition = [96 * 3 * 6]float64{
	0.0, 2.0, 4.5, 2.7, 9.8, 3.0, 0.0, 2.6, 4.9, 9.8, 7.6, 4.9,
	0.0, 3.4, 3.3, 9.6, 8.5, 4.5, 0.0, 3.1, 4.8, 7.1, 4.0, 4.5,
	0.0, 3.0, 4.5, 9.4, 10.6, 3.1, 0.0, 3.5, 2.2, 9.0, 12.3, 4.2,
	0.0, 2.4, 4.8, 9.0, 12.7, 4.1, 0.0, 1.9, 4.1, 3.1, 11.8, 2.8,
	1.9, 2.6, 5.0, 7.8, 10.2, 4.9, 1.9, 3.6, 3.6, 10.8, 14.1, 7.7,
	1.7, 5.1, 6.7, 9.9, 12.5, 7.4, 1.9, 4.9, 7.2, 8.7, 8.5, 7.2,
	1.9, 5.1, 6.0, 9.4, 12.9, 7.2, 1.3, 5.2, 5.7, 10.0, 10.8, 7.0,
	1.9, 3.5, 4.4, 9.7, 13.7, 7.4, 1.9, 2.5, 5.8, 7.6, 10.6, 4.8,
	0.5, 3.5, 5.6, 7.6, 14.2, 4.8, 1.0, 5.1, 5.3, 11.8, 14.6, 7.6,
	0.7, 6.3, 8.5, 10.6, 18.6, 7.7, 0.9, 7.9, 7.4, 9.4, 12.2, 6.9,
	0.9, 8.2, 6.0, 10.3, 14.2, 7.3, 0.8, 5.8, 8.9, 10.1, 14.2, 7.6,
	0.8, 4.8, 6.4, 10.7, 12.3, 7.6, 0.3, 3.2, 4.2, 8.8, 11.8, 4.7,
	0.3, 3.5, 5.6, 8.3, 13.2, 5.0, 0.6, 5.4, 7.2, 10.3, 16.5, 7.8,
	0.6, 8.3, 8.6, 9.7, 17.1, 7.7, 0.5, 9.2, 12.6, 10.0, 21.8, 8.2,
	1.0, 9.5, 12.4, 11.0, 22.7, 8.2, 0.7, 8.2, 7.9, 9.2, 16.2, 7.7,
	0.8, 5.2, 7.7, 9.9, 13.3, 7.9, 0.4, 3.4, 5.7, 8.1, 12.8, 4.9,
	0.0, 2.0, 5.7, 12.9, 14.1, 3.0, 0.0, 3.0, 6.3, 13.0, 14.6, 5.0,
	0.0, 4.0, 6.0, 11.7, 15.0, 5.0, 0.0, 4.0, 6.6, 11.6, 17.5, 5.0,
	0.0, 3.8, 6.7, 11.7, 17.8, 4.9, 0.0, 4.0, 5.4, 11.7, 17.8, 5.0,
	0.0, 3.0, 5.9, 11.9, 16.6, 5.0, 0.0, 2.0, 7.4, 12.8, 14.9, 3.0,
	0.0, 3.0, 4.7, 13.2, 18.4, 5.0, 0.1, 4.0, 8.1, 13.5, 18.3, 8.0,
	0.1, 5.9, 7.8, 12.4, 16.3, 8.0, 0.3, 5.8, 7.9, 11.6, 19.0, 8.0,
	0.3, 5.9, 8.3, 11.7, 18.6, 8.0, 0.3, 5.8, 8.4, 12.6, 18.0, 8.0,
	0.5, 3.9, 10.0, 12.8, 16.8, 8.0, 0.2, 3.0, 5.2, 12.9, 13.7, 5.0,
	0.0, 4.0, 6.2, 13.0, 17.4, 5.0, 0.0, 6.0, 7.7, 12.9, 19.0, 8.0,
	1.0, 7.8, 11.6, 13.2, 22.2, 7.9, 0.8, 8.6, 9.8, 12.3, 20.0, 7.9,
	0.7, 8.5, 9.0, 11.5, 20.3, 7.9, 0.7, 7.8, 11.3, 12.4, 19.9, 8.0,
	0.5, 5.3, 6.9, 12.6, 17.3, 7.9, 0.5, 4.0, 5.8, 12.8, 14.3, 5.0,
	0.0, 4.0, 6.8, 11.6, 16.2, 5.0, 0.0, 6.0, 7.9, 11.9, 17.9, 8.0,
	0.0, 8.7, 9.9, 11.7, 20.6, 8.0, 1.0, 9.7, 12.7, 12.2, 24.3, 8.5,
	0.9, 9.6, 13.3, 10.6, 22.6, 8.4, 0.7, 8.3, 8.8, 11.0, 17.8, 7.8,
	0.8, 5.5, 7.8, 11.3, 15.9, 7.8, 0.7, 3.7, 5.4, 10.4, 14.8, 4.8,
	0.0, 2.0, 7.9, 13.4, 15.2, 2.9, 0.0, 2.8, 6.5, 12.7, 16.3, 5.0,
	0.0, 3.9, 5.3, 12.7, 16.8, 5.0, 0.0, 4.0, 6.7, 11.5, 18.1, 5.0,
	0.0, 4.0, 6.2, 12.1, 17.5, 5.0, 0.0, 4.0, 6.7, 13.4, 17.2, 5.0,
	0.0, 3.0, 6.6, 13.6, 14.9, 5.0, 0.0, 2.0, 7.6, 13.7, 13.1, 3.0,
	0.2, 3.0, 5.1, 11.5, 12.7, 4.9, 0.3, 3.8, 8.6, 12.6, 17.2, 8.0,
	0.4, 5.8, 7.7, 9.6, 15.5, 8.0, 0.5, 5.9, 7.6, 11.3, 16.3, 8.0,
	0.8, 5.9, 7.1, 10.9, 19.9, 8.0, 0.1, 6.0, 7.8, 13.1, 19.6, 8.0,
	2.3, 4.0, 8.9, 13.4, 18.3, 8.0, 0.0, 3.0, 6.0, 13.3, 13.6, 5.0,
	0.6, 3.9, 5.5, 12.8, 14.6, 5.0, 0.7, 5.6, 7.4, 12.0, 17.0, 7.9,
	0.9, 7.8, 10.2, 12.1, 19.1, 7.9, 0.7, 8.5, 9.2, 11.0, 19.5, 7.9,
	1.0, 8.5, 10.0, 11.1, 21.0, 7.9, 0.1, 7.9, 11.2, 13.0, 21.3, 7.9,
	0.0, 6.0, 7.2, 13.5, 15.1, 8.0, 0.0, 4.0, 6.0, 13.1, 13.5, 5.0,
	0.7, 3.5, 5.5, 10.0, 12.8, 4.8, 1.0, 5.7, 6.6, 10.6, 14.5, 7.9,
	0.7, 7.8, 9.0, 10.4, 15.7, 7.9, 1.0, 9.7, 13.4, 10.1, 23.4, 8.5,
	1.1, 9.7, 13.4, 10.9, 24.3, 8.4, 0.0, 8.7, 10.3, 11.7, 19.8, 8.0,
	0.0, 5.9, 8.5, 12.7, 18.4, 8.0, 0.0, 4.0, 6.8, 12.1, 14.8, 5.0,
	0.0, 2.0, 5.8, 12.3, 13.2, 3.0, 0.0, 2.8, 5.3, 12.8, 16.6, 5.0,
	0.0, 4.0, 5.2, 12.8, 17.2, 5.0, 0.0, 4.0, 5.1, 10.8, 17.5, 5.0,
	0.0, 3.9, 6.3, 10.8, 17.0, 5.0, 0.0, 4.0, 6.0, 13.1, 15.4, 5.0,
	0.0, 2.9, 5.3, 13.3, 16.0, 5.0, 0.0, 2.0, 5.7, 13.3, 12.9, 3.0,
	0.2, 2.5, 5.0, 12.7, 12.4, 5.0, 0.4, 3.7, 8.3, 12.4, 15.6, 7.7,
	0.6, 5.8, 7.8, 11.6, 16.5, 7.9, 0.5, 6.0, 7.2, 11.2, 17.3, 7.9,
	0.5, 5.9, 8.2, 11.5, 18.8, 8.0, 1.1, 5.9, 7.4, 13.1, 18.5, 8.0,
	0.6, 4.0, 8.3, 13.7, 18.3, 7.9, 0.0, 3.0, 4.6, 13.6, 16.9, 5.0,
	0.6, 3.8, 5.5, 11.5, 14.1, 5.0, 0.9, 4.7, 7.5, 12.8, 14.7, 7.9,
	0.8, 6.9, 9.8, 12.5, 19.1, 7.6, 1.1, 8.7, 9.2, 9.2, 20.5, 7.9,
	1.1, 8.6, 9.3, 12.0, 20.4, 7.8, 0.8, 7.7, 11.0, 13.2, 22.0, 8.0,
	0.0, 5.8, 8.2, 12.9, 18.8, 8.0, 0.0, 4.0, 6.4, 13.1, 16.3, 5.0,
	0.6, 3.5, 5.6, 9.7, 12.1, 4.6, 1.0, 5.5, 7.2, 9.9, 13.0, 7.8,
	0.5, 8.0, 9.7, 9.8, 14.4, 7.7, 0.9, 9.8, 12.9, 10.1, 23.1, 8.1,
	1.0, 9.7, 13.3, 11.4, 23.9, 8.2, 0.0, 8.6, 10.2, 11.4, 20.4, 7.9,
	0.0, 5.9, 7.3, 11.6, 18.4, 8.0, 0.0, 3.8, 6.6, 11.0, 15.6, 5.0,
	0.0, 1.9, 5.7, 3.4, 11.2, 3.0, 0.0, 2.6, 4.7, 10.1, 10.9, 5.0,
	0.0, 3.6, 2.2, 10.7, 9.5, 4.5, 0.0, 3.0, 5.3, 8.3, 4.1, 4.2,
	0.0, 3.5, 5.4, 9.8, 8.1, 3.2, 0.0, 3.4, 2.6, 9.4, 10.6, 4.2,
	0.0, 2.4, 6.3, 9.7, 9.0, 4.3, 0.0, 1.9, 3.1, 3.1, 12.2, 2.9,
	1.8, 2.9, 5.9, 7.5, 11.9, 4.8, 1.8, 3.6, 4.3, 11.3, 14.8, 7.7,
	1.8, 5.2, 5.4, 10.3, 11.6, 7.6, 1.8, 4.9, 6.5, 9.7, 12.9, 7.4,
	1.9, 4.9, 5.7, 10.3, 11.4, 7.2, 1.2, 5.1, 5.9, 10.9, 11.3, 6.9,
	1.8, 3.4, 3.9, 11.2, 12.1, 7.2, 1.9, 2.8, 4.4, 8.3, 10.9, 4.7,
	0.4, 3.4, 4.9, 8.7, 10.3, 4.9, 0.6, 5.0, 7.3, 11.2, 13.6, 7.4,
	0.6, 6.2, 8.7, 12.2, 18.8, 7.7, 1.0, 8.1, 5.8, 10.4, 14.0, 7.5,
	0.5, 7.7, 6.7, 9.8, 14.4, 7.3, 0.8, 6.5, 8.1, 11.1, 13.4, 7.2,
	0.8, 4.5, 6.1, 11.5, 12.8, 7.5, 0.5, 3.4, 5.1, 9.4, 8.8, 4.7,
	0.2, 3.1, 5.8, 9.0, 15.5, 4.9, 0.8, 5.4, 7.4, 10.0, 15.7, 7.8,
	0.5, 8.3, 8.8, 10.4, 17.3, 7.8, 1.2, 9.3, 12.3, 11.2, 22.0, 8.3,
	0.4, 9.3, 12.4, 9.1, 22.3, 8.1, 0.7, 8.1, 9.0, 9.4, 15.5, 7.7,
	0.6, 5.4, 6.5, 10.3, 14.1, 7.7, 0.3, 3.7, 3.4, 8.1, 12.5, 4.9,
	0.0, 1.9, 7.4, 12.7, 14.3, 3.0, 0.0, 3.0, 6.4, 13.6, 14.4, 5.0,
	0.0, 4.0, 4.8, 13.1, 17.0, 5.0, 0.0, 4.0, 6.0, 11.9, 14.8, 5.0,
	0.0, 4.0, 7.0, 12.2, 18.3, 5.0, 0.0, 3.9, 6.8, 13.4, 17.5, 5.0,
	0.0, 3.0, 6.3, 13.0, 15.1, 5.0, 0.0, 2.0, 5.8, 13.3, 15.1, 2.9,
	0.0, 3.0, 6.6, 12.9, 17.2, 5.0, 0.0, 3.9, 9.2, 12.9, 18.9, 8.0,
	0.0, 6.0, 8.0, 13.0, 17.9, 8.0, 0.4, 6.0, 7.5, 12.1, 19.9, 8.0,
	0.6, 5.8, 6.6, 11.3, 18.8, 8.0, 0.4, 5.9, 8.5, 13.2, 17.2, 8.0,
	0.3, 3.9, 9.9, 13.1, 17.4, 7.8, 0.2, 3.0, 5.0, 12.7, 13.4, 4.9,
	0.0, 4.0, 6.8, 12.2, 17.3, 5.0, 0.0, 6.0, 8.0, 12.8, 20.0, 8.0,
	1.0, 7.8, 10.8, 12.8, 23.0, 8.0, 0.5, 8.6, 8.9, 12.2, 19.7, 7.9,
	0.7, 8.6, 8.5, 11.6, 19.7, 7.9, 0.8, 7.5, 11.1, 12.8, 20.0, 7.9,
	0.7, 5.0, 6.7, 12.8, 18.8, 7.8, 0.8, 3.6, 5.3, 11.8, 12.4, 5.0,
	0.0, 4.0, 5.2, 12.3, 16.4, 5.0, 0.0, 6.0, 8.3, 12.5, 18.8, 8.0,
	0.0, 8.6, 10.4, 12.2, 20.0, 7.9, 1.0, 9.8, 13.0, 11.0, 23.4, 8.1,
	0.9, 9.7, 12.7, 11.0, 23.6, 8.4, 0.7, 8.3, 9.0, 10.0, 17.4, 7.9,
	0.9, 5.8, 7.1, 10.0, 16.3, 7.8, 0.7, 3.7, 5.2, 10.2, 13.1, 4.6,
	0.0, 2.0, 6.5, 12.2, 13.9, 0.0, 0.0, 3.0, 6.5, 12.0, 15.2, 5.0,
	0.0, 3.9, 6.0, 12.4, 15.3, 5.0, 0.0, 4.0, 6.3, 10.4, 18.1, 5.0,
	0.0, 3.9, 7.0, 11.2, 17.6, 5.0, 0.0, 4.0, 6.8, 12.1, 17.0, 5.0,
	0.0, 3.0, 6.3, 11.4, 16.5, 5.0, 0.0, 2.0, 6.6, 13.1, 15.6, 2.7,
	0.0, 3.0, 6.3, 12.7, 15.6, 5.0, 0.0, 4.0, 9.3, 12.6, 21.0, 8.0,
	0.9, 6.0, 7.9, 12.9, 17.5, 8.0, 0.3, 5.7, 7.0, 11.8, 19.2, 8.0,
	0.3, 5.7, 7.0, 10.6, 19.3, 8.0, 0.3, 5.9, 8.1, 13.3, 16.0, 8.0,
	0.3, 3.6, 9.0, 12.4, 17.6, 8.0, 0.2, 3.0, 5.2, 13.1, 14.7, 5.0,
	0.0, 3.8, 4.8, 12.5, 17.8, 5.0, 0.0, 5.9, 7.8, 13.7, 19.6, 8.0,
	1.2, 7.8, 11.3, 13.5, 21.8, 8.0, 0.8, 8.4, 8.8, 11.1, 21.3, 7.9,
	0.6, 8.5, 9.5, 10.7, 18.5, 7.4, 0.8, 7.7, 10.5, 12.5, 19.2, 7.8,
	0.7, 5.4, 6.6, 12.6, 14.2, 8.0, 0.6, 3.8, 5.8, 11.6, 14.6, 5.0,
	0.0, 4.0, 6.4, 10.3, 15.7, 5.0, 0.0, 6.0, 8.3, 11.0, 17.4, 8.0,
	0.0, 8.7, 10.5, 10.5, 20.2, 7.9, 1.0, 9.7, 13.2, 11.5, 23.4, 8.0,
	0.9, 9.6, 13.0, 10.6, 23.4, 8.1, 0.6, 8.4, 9.2, 10.5, 16.9, 7.8,
	0.9, 5.8, 7.0, 10.8, 14.0, 7.9, 0.8, 3.8, 5.9, 9.9, 12.5, 4.9,
	0.0, 2.0, 5.8, 13.1, 14.6, 3.0, 0.0, 3.0, 6.7, 12.5, 14.5, 5.0,
	0.0, 4.0, 5.5, 12.7, 16.0, 5.0, 0.0, 4.0, 6.7, 12.1, 17.2, 5.0,
	0.0, 3.9, 6.2, 10.9, 16.9, 5.0, 0.0, 4.0, 5.9, 12.0, 15.4, 5.0,
	0.0, 3.0, 6.4, 13.6, 14.6, 5.0, 0.0, 2.0, 7.1, 13.6, 14.2, 3.0,
	0.2, 2.9, 6.0, 12.6, 13.5, 5.0, 0.3, 3.9, 5.8, 12.5, 16.8, 7.8,
	0.4, 5.9, 7.3, 12.2, 16.7, 8.0, 0.7, 5.9, 7.1, 11.1, 18.4, 8.0,
	0.3, 6.0, 7.9, 11.8, 20.5, 8.0, 0.7, 5.9, 7.9, 12.9, 20.3, 8.0,
	0.0, 3.9, 7.7, 13.3, 20.2, 8.0, 0.0, 2.9, 5.0, 13.5, 16.2, 5.0,
	0.6, 3.8, 6.7, 11.5, 14.2, 4.9, 0.6, 5.2, 6.7, 12.6, 16.8, 7.8,
	0.9, 7.7, 9.9, 12.6, 19.1, 7.9, 0.5, 8.4, 10.0, 11.4, 20.7, 7.9,
	0.8, 8.4, 10.1, 9.8, 20.4, 7.9, 0.5, 7.8, 10.9, 13.0, 21.7, 8.0,
	0.0, 5.9, 8.7, 13.5, 19.0, 8.0, 0.0, 4.0, 4.7, 12.5, 15.8, 5.0,
	0.8, 3.7, 6.1, 8.8, 11.9, 4.4, 0.9, 5.8, 6.2, 9.9, 14.9, 7.8,
	0.7, 7.9, 8.5, 8.3, 18.7, 7.6, 0.8, 9.6, 12.7, 11.1, 22.5, 8.2,
	0.9, 9.8, 12.9, 11.3, 22.9, 8.1, 0.0, 8.5, 10.1, 12.3, 20.8, 8.0,
	0.0, 6.0, 8.3, 12.0, 17.1, 8.0, 0.0, 4.0, 6.0, 11.9, 14.4, 5.0,
	0.0, 1.9, 3.9, 2.9, 10.7, 2.9, 0.0, 2.4, 5.7, 9.2, 13.5, 5.0,
	0.0, 3.7, 2.3, 9.9, 10.2, 4.5, 0.0, 3.4, 4.8, 9.1, 3.2, 4.5,
	0.0, 3.6, 5.7, 9.6, 9.5, 2.8, 0.0, 3.6, 1.4, 8.9, 11.4, 4.2,
	0.0, 2.2, 4.6, 8.0, 9.0, 4.2, 0.0, 1.6, 4.4, 3.7, 9.9, 2.8,
	1.9, 2.6, 5.5, 7.9, 10.6, 4.9, 1.9, 3.6, 4.9, 11.3, 15.9, 7.7,
	1.9, 5.1, 6.2, 10.4, 10.7, 7.6, 1.9, 4.9, 6.0, 9.8, 11.7, 7.1,
	1.9, 5.0, 6.4, 10.0, 9.7, 6.9, 1.6, 4.5, 6.5, 10.6, 14.4, 6.9,
	1.9, 3.2, 3.8, 9.9, 15.0, 7.5, 1.9, 2.9, 5.5, 7.4, 12.0, 4.7,
	0.6, 3.6, 6.0, 8.7, 12.9, 5.0, 0.8, 5.1, 6.9, 11.4, 11.8, 7.8,
	0.8, 6.1, 9.4, 11.9, 18.4, 7.6, 0.9, 8.0, 7.5, 10.3, 14.6, 7.4,
	0.9, 8.0, 7.3, 9.7, 16.7, 7.4, 0.9, 5.9, 8.7, 10.5, 16.1, 7.1,
	1.0, 4.9, 5.1, 11.1, 13.9, 7.5, 0.4, 3.0, 4.6, 7.5, 9.6, 4.3,
	0.3, 3.4, 6.6, 7.9, 12.5, 5.0, 0.8, 5.3, 7.4, 10.8, 17.0, 7.9,
	0.5, 8.1, 9.0, 9.9, 16.6, 7.8, 1.4, 9.4, 12.6, 10.2, 21.4, 8.2,
	0.9, 9.4, 12.3, 11.0, 23.2, 8.2, 0.5, 8.1, 8.5, 9.2, 16.9, 7.6,
	0.8, 5.5, 7.0, 10.2, 14.5, 7.8, 0.2, 3.4, 5.5, 8.3, 14.2, 4.6,
}
